// Package wasi is a checked translation of the wasi_unstable system calls.
//
// Each System method issues exactly one call on the underlying abi.Host and
// maps its status:
//
//   - success: the output slot is returned, or a nil error for calls without
//     one;
//   - any other status: an Errno and zero outputs. The output slot the host
//     may have touched is never read.
//
// Pointer and length pairs become slices, strings and buffer views. Scatter
// reads take []IoVec, gather writes take []CIoVec; both are passed to the
// host without copying. Transfer counts are checked against the capacity the
// caller offered and a host that reports more panics with a contract error.
//
// The layer never retries, logs, or rewrites a status. It holds no locks.
//
//	sys := wasi.Default()
//	n, err := sys.FdWrite(1, []wasi.CIoVec{wasi.CIoVecString("hello\n")})
//	if errors.Is(err, fs.ErrPermission) {
//		// stdout lacks RightFdWrite
//	}
//
// Constants of the ABI are re-exported with Go names and identical values:
// abi.RIGHT_FD_READ is RightFdRead, abi.ENOENT is ENOENT as an Errno.
package wasi

package wasi

import (
	"errors"
	"io/fs"
	"strconv"

	"github.com/wippyai/wasi-shim/abi"
)

// Errno is a non-zero host status code.
//
// The layer only produces an Errno from a status that failed the success
// check, so a zero Errno never reaches callers. A zero Errno is invalid: it
// can only come from a conversion, and it names itself as such. Values built
// by hand should go through NewErrno.
type Errno uint16

// NewErrno converts a raw status into an Errno. It reports false for the
// success status, which has no Errno.
func NewErrno(code abi.Errno) (Errno, bool) {
	if code == abi.ESUCCESS {
		return 0, false
	}
	return Errno(code), true
}

// Code returns the raw status value.
func (e Errno) Code() abi.Errno {
	return abi.Errno(e)
}

func (e Errno) Error() string {
	if e == 0 {
		return "invalid errno 0 (success status)"
	}
	if int(e) < len(errnoTable) && errnoTable[e].msg != "" {
		return errnoTable[e].msg
	}
	return "errno " + strconv.Itoa(int(e))
}

// Name returns the symbolic name of the code, e.g. "EBADF".
func (e Errno) Name() string {
	if e == 0 {
		return "EINVALID0"
	}
	if int(e) < len(errnoTable) && errnoTable[e].name != "" {
		return errnoTable[e].name
	}
	return "E" + strconv.Itoa(int(e))
}

// Is maps codes onto the io/fs sentinels so callers can test with errors.Is
// the same way they would for an *os.PathError.
func (e Errno) Is(target error) bool {
	switch target {
	case fs.ErrNotExist:
		return e == ENOENT
	case fs.ErrExist:
		return e == EEXIST || e == ENOTEMPTY
	case fs.ErrPermission:
		return e == EACCES || e == EPERM || e == ENOTCAPABLE
	case errors.ErrUnsupported:
		return e == ENOSYS || e == ENOTSUP
	}
	return false
}

// Timeout reports whether the code is a timeout.
func (e Errno) Timeout() bool {
	return e == EAGAIN || e == ETIMEDOUT
}

// Temporary reports whether retrying the call could succeed.
func (e Errno) Temporary() bool {
	return e == EINTR || e == EMFILE || e == ENFILE || e.Timeout()
}

var errnoTable = [...]struct{ name, msg string }{
	abi.E2BIG:           {"E2BIG", "argument list too long"},
	abi.EACCES:          {"EACCES", "permission denied"},
	abi.EADDRINUSE:      {"EADDRINUSE", "address already in use"},
	abi.EADDRNOTAVAIL:   {"EADDRNOTAVAIL", "address not available"},
	abi.EAFNOSUPPORT:    {"EAFNOSUPPORT", "address family not supported"},
	abi.EAGAIN:          {"EAGAIN", "resource unavailable, try again"},
	abi.EALREADY:        {"EALREADY", "connection already in progress"},
	abi.EBADF:           {"EBADF", "bad file descriptor"},
	abi.EBADMSG:         {"EBADMSG", "bad message"},
	abi.EBUSY:           {"EBUSY", "device or resource busy"},
	abi.ECANCELED:       {"ECANCELED", "operation canceled"},
	abi.ECHILD:          {"ECHILD", "no child processes"},
	abi.ECONNABORTED:    {"ECONNABORTED", "connection aborted"},
	abi.ECONNREFUSED:    {"ECONNREFUSED", "connection refused"},
	abi.ECONNRESET:      {"ECONNRESET", "connection reset"},
	abi.EDEADLK:         {"EDEADLK", "resource deadlock would occur"},
	abi.EDESTADDRREQ:    {"EDESTADDRREQ", "destination address required"},
	abi.EDOM:            {"EDOM", "mathematics argument out of domain of function"},
	abi.EDQUOT:          {"EDQUOT", "disk quota exceeded"},
	abi.EEXIST:          {"EEXIST", "file exists"},
	abi.EFAULT:          {"EFAULT", "bad address"},
	abi.EFBIG:           {"EFBIG", "file too large"},
	abi.EHOSTUNREACH:    {"EHOSTUNREACH", "host is unreachable"},
	abi.EIDRM:           {"EIDRM", "identifier removed"},
	abi.EILSEQ:          {"EILSEQ", "illegal byte sequence"},
	abi.EINPROGRESS:     {"EINPROGRESS", "operation in progress"},
	abi.EINTR:           {"EINTR", "interrupted function"},
	abi.EINVAL:          {"EINVAL", "invalid argument"},
	abi.EIO:             {"EIO", "I/O error"},
	abi.EISCONN:         {"EISCONN", "socket is connected"},
	abi.EISDIR:          {"EISDIR", "is a directory"},
	abi.ELOOP:           {"ELOOP", "too many levels of symbolic links"},
	abi.EMFILE:          {"EMFILE", "file descriptor value too large"},
	abi.EMLINK:          {"EMLINK", "too many links"},
	abi.EMSGSIZE:        {"EMSGSIZE", "message too large"},
	abi.EMULTIHOP:       {"EMULTIHOP", "multihop attempted"},
	abi.ENAMETOOLONG:    {"ENAMETOOLONG", "filename too long"},
	abi.ENETDOWN:        {"ENETDOWN", "network is down"},
	abi.ENETRESET:       {"ENETRESET", "connection aborted by network"},
	abi.ENETUNREACH:     {"ENETUNREACH", "network unreachable"},
	abi.ENFILE:          {"ENFILE", "too many files open in system"},
	abi.ENOBUFS:         {"ENOBUFS", "no buffer space available"},
	abi.ENODEV:          {"ENODEV", "no such device"},
	abi.ENOENT:          {"ENOENT", "no such file or directory"},
	abi.ENOEXEC:         {"ENOEXEC", "executable file format error"},
	abi.ENOLCK:          {"ENOLCK", "no locks available"},
	abi.ENOLINK:         {"ENOLINK", "link has been severed"},
	abi.ENOMEM:          {"ENOMEM", "not enough space"},
	abi.ENOMSG:          {"ENOMSG", "no message of the desired type"},
	abi.ENOPROTOOPT:     {"ENOPROTOOPT", "protocol not available"},
	abi.ENOSPC:          {"ENOSPC", "no space left on device"},
	abi.ENOSYS:          {"ENOSYS", "function not supported"},
	abi.ENOTCONN:        {"ENOTCONN", "the socket is not connected"},
	abi.ENOTDIR:         {"ENOTDIR", "not a directory or a symbolic link to a directory"},
	abi.ENOTEMPTY:       {"ENOTEMPTY", "directory not empty"},
	abi.ENOTRECOVERABLE: {"ENOTRECOVERABLE", "state not recoverable"},
	abi.ENOTSOCK:        {"ENOTSOCK", "not a socket"},
	abi.ENOTSUP:         {"ENOTSUP", "not supported"},
	abi.ENOTTY:          {"ENOTTY", "inappropriate I/O control operation"},
	abi.ENXIO:           {"ENXIO", "no such device or address"},
	abi.EOVERFLOW:       {"EOVERFLOW", "value too large to be stored in data type"},
	abi.EOWNERDEAD:      {"EOWNERDEAD", "previous owner died"},
	abi.EPERM:           {"EPERM", "operation not permitted"},
	abi.EPIPE:           {"EPIPE", "broken pipe"},
	abi.EPROTO:          {"EPROTO", "protocol error"},
	abi.EPROTONOSUPPORT: {"EPROTONOSUPPORT", "protocol not supported"},
	abi.EPROTOTYPE:      {"EPROTOTYPE", "protocol wrong type for socket"},
	abi.ERANGE:          {"ERANGE", "result too large"},
	abi.EROFS:           {"EROFS", "read-only file system"},
	abi.ESPIPE:          {"ESPIPE", "invalid seek"},
	abi.ESRCH:           {"ESRCH", "no such process"},
	abi.ESTALE:          {"ESTALE", "stale file handle"},
	abi.ETIMEDOUT:       {"ETIMEDOUT", "connection timed out"},
	abi.ETXTBSY:         {"ETXTBSY", "text file busy"},
	abi.EXDEV:           {"EXDEV", "cross-device link"},
	abi.ENOTCAPABLE:     {"ENOTCAPABLE", "capabilities insufficient"},
}

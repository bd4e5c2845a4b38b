package wasi

import "github.com/wippyai/wasi-shim/abi"

// Paths are resolved relative to a directory descriptor and passed to the
// host as pointer and length; they need no NUL terminator.

// PathCreateDirectory creates the directory path under fd.
func (s *System) PathCreateDirectory(fd Fd, path string) error {
	p, n := stringArg(path)
	return check(s.host.PathCreateDirectory(fd, p, n))
}

// PathFilestatGet returns the attributes of path. With LookupSymlinkFollow a
// trailing symlink is resolved.
func (s *System) PathFilestatGet(fd Fd, flags LookupFlags, path string) (FileStat, error) {
	p, n := stringArg(path)
	return call1(func(st *abi.FileStat) abi.Errno {
		return s.host.PathFilestatGet(fd, flags, p, n, st)
	})
}

// PathFilestatSetTimes sets the access and modification times of path as fst selects.
func (s *System) PathFilestatSetTimes(fd Fd, flags LookupFlags, path string, atim, mtim Timestamp, fst FstFlags) error {
	p, n := stringArg(path)
	return check(s.host.PathFilestatSetTimes(fd, flags, p, n, atim, mtim, fst))
}

// PathLink creates newPath under newFd as a hard link to oldPath under oldFd.
func (s *System) PathLink(oldFd Fd, oldFlags LookupFlags, oldPath string, newFd Fd, newPath string) error {
	op, on := stringArg(oldPath)
	np, nn := stringArg(newPath)
	return check(s.host.PathLink(oldFd, oldFlags, op, on, newFd, np, nn))
}

// PathOpen opens path relative to dirfd and returns the new descriptor. base
// and inheriting may only narrow the rights of dirfd.
func (s *System) PathOpen(dirfd Fd, dirflags LookupFlags, path string, oflags OFlags, base, inheriting Rights, fdflags FdFlags) (Fd, error) {
	p, n := stringArg(path)
	return call1(func(fd *abi.Fd) abi.Errno {
		return s.host.PathOpen(dirfd, dirflags, p, n, oflags, base, inheriting, fdflags, fd)
	})
}

// PathReadlink reads the target of the symlink path into buf and returns its
// length. A result equal to len(buf) may be truncated.
func (s *System) PathReadlink(fd Fd, path string, buf []byte) (int, error) {
	p, n := stringArg(path)
	bp, bn := bytesArg(buf)
	used, err := call1(func(used *abi.Size) abi.Errno {
		return s.host.PathReadlink(fd, p, n, bp, bn, used)
	})
	if err != nil {
		return 0, err
	}
	return bounded("path_readlink", used, uint64(bn)), nil
}

// PathRemoveDirectory removes the empty directory path under fd.
func (s *System) PathRemoveDirectory(fd Fd, path string) error {
	p, n := stringArg(path)
	return check(s.host.PathRemoveDirectory(fd, p, n))
}

// PathRename moves oldPath under oldFd to newPath under newFd.
func (s *System) PathRename(oldFd Fd, oldPath string, newFd Fd, newPath string) error {
	op, on := stringArg(oldPath)
	np, nn := stringArg(newPath)
	return check(s.host.PathRename(oldFd, op, on, newFd, np, nn))
}

// PathSymlink creates newPath under fd pointing at oldPath. oldPath is stored
// verbatim and not resolved.
func (s *System) PathSymlink(oldPath string, fd Fd, newPath string) error {
	op, on := stringArg(oldPath)
	np, nn := stringArg(newPath)
	return check(s.host.PathSymlink(op, on, fd, np, nn))
}

// PathUnlinkFile removes the file path under fd.
func (s *System) PathUnlinkFile(fd Fd, path string) error {
	p, n := stringArg(path)
	return check(s.host.PathUnlinkFile(fd, p, n))
}

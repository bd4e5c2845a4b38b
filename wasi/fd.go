package wasi

import "github.com/wippyai/wasi-shim/abi"

// FdAdvise tells the host how the range of fd at offset will be accessed.
func (s *System) FdAdvise(fd Fd, offset, length FileSize, advice Advice) error {
	return check(s.host.FdAdvise(fd, offset, length, advice))
}

// FdAllocate makes sure the range of fd at offset is backed by storage.
func (s *System) FdAllocate(fd Fd, offset, length FileSize) error {
	return check(s.host.FdAllocate(fd, offset, length))
}

// FdClose closes fd. The layer does not track descriptors; closing twice is
// whatever the host says it is.
func (s *System) FdClose(fd Fd) error {
	return check(s.host.FdClose(fd))
}

// FdDatasync flushes the data of fd, without its metadata.
func (s *System) FdDatasync(fd Fd) error {
	return check(s.host.FdDatasync(fd))
}

// FdFdstatGet returns the type, flags and rights of fd.
func (s *System) FdFdstatGet(fd Fd) (FdStat, error) {
	return call1(func(st *abi.FdStat) abi.Errno {
		return s.host.FdFdstatGet(fd, st)
	})
}

// FdFdstatSetFlags replaces the descriptor flags of fd.
func (s *System) FdFdstatSetFlags(fd Fd, flags FdFlags) error {
	return check(s.host.FdFdstatSetFlags(fd, flags))
}

// FdFdstatSetRights drops rights from fd. Hosts refuse to add rights.
func (s *System) FdFdstatSetRights(fd Fd, base, inheriting Rights) error {
	return check(s.host.FdFdstatSetRights(fd, base, inheriting))
}

// FdFilestatGet returns the attributes of the file open at fd.
func (s *System) FdFilestatGet(fd Fd) (FileStat, error) {
	return call1(func(st *abi.FileStat) abi.Errno {
		return s.host.FdFilestatGet(fd, st)
	})
}

// FdFilestatSetSize truncates or extends the file open at fd to size.
func (s *System) FdFilestatSetSize(fd Fd, size FileSize) error {
	return check(s.host.FdFilestatSetSize(fd, size))
}

// FdFilestatSetTimes sets the access and modification times of fd as flags select.
func (s *System) FdFilestatSetTimes(fd Fd, atim, mtim Timestamp, flags FstFlags) error {
	return check(s.host.FdFilestatSetTimes(fd, atim, mtim, flags))
}

// FdPread reads from fd at offset into iovs without moving the file offset.
// It returns the number of bytes read.
func (s *System) FdPread(fd Fd, iovs []IoVec, offset FileSize) (int, error) {
	ptr, n := iovecs(iovs)
	nread, err := call1(func(nread *abi.Size) abi.Errno {
		return s.host.FdPread(fd, ptr, n, offset, nread)
	})
	if err != nil {
		return 0, err
	}
	return bounded("fd_pread", nread, capacity(iovs)), nil
}

// FdPrestatGet describes the pre-opened descriptor fd.
func (s *System) FdPrestatGet(fd Fd) (Prestat, error) {
	return call1(func(p *abi.Prestat) abi.Errno {
		return s.host.FdPrestatGet(fd, p)
	})
}

// FdPrestatDirName fills path with the name of the pre-opened directory fd.
// path should be Prestat.Dir.PrNameLen bytes long.
func (s *System) FdPrestatDirName(fd Fd, path []byte) error {
	ptr, n := bytesArg(path)
	return check(s.host.FdPrestatDirName(fd, ptr, n))
}

// FdPwrite writes iovs to fd at offset without moving the file offset.
func (s *System) FdPwrite(fd Fd, iovs []CIoVec, offset FileSize) (int, error) {
	ptr, n := ciovecs(iovs)
	nwritten, err := call1(func(nwritten *abi.Size) abi.Errno {
		return s.host.FdPwrite(fd, ptr, n, offset, nwritten)
	})
	if err != nil {
		return 0, err
	}
	return bounded("fd_pwrite", nwritten, capacity(iovs)), nil
}

// FdRead scatters bytes from fd into iovs in order and returns how many were
// read. Zero with a nil error means end of file.
func (s *System) FdRead(fd Fd, iovs []IoVec) (int, error) {
	ptr, n := iovecs(iovs)
	nread, err := call1(func(nread *abi.Size) abi.Errno {
		return s.host.FdRead(fd, ptr, n, nread)
	})
	if err != nil {
		return 0, err
	}
	return bounded("fd_read", nread, capacity(iovs)), nil
}

// FdReaddir fills buf with directory entries starting after cookie and
// returns the number of bytes used. A result equal to len(buf) means more
// entries may follow; decode the buffer with Dirents.
func (s *System) FdReaddir(fd Fd, buf []byte, cookie DirCookie) (int, error) {
	ptr, n := bytesArg(buf)
	used, err := call1(func(used *abi.Size) abi.Errno {
		return s.host.FdReaddir(fd, ptr, n, cookie, used)
	})
	if err != nil {
		return 0, err
	}
	return bounded("fd_readdir", used, uint64(n)), nil
}

// FdRenumber atomically replaces to with from.
func (s *System) FdRenumber(from, to Fd) error {
	return check(s.host.FdRenumber(from, to))
}

// FdSeek moves the offset of fd and returns the new absolute offset.
func (s *System) FdSeek(fd Fd, delta FileDelta, whence Whence) (FileSize, error) {
	return call1(func(off *abi.FileSize) abi.Errno {
		return s.host.FdSeek(fd, delta, whence, off)
	})
}

// FdSync flushes the data and metadata of fd.
func (s *System) FdSync(fd Fd) error {
	return check(s.host.FdSync(fd))
}

// FdTell returns the current offset of fd.
func (s *System) FdTell(fd Fd) (FileSize, error) {
	return call1(func(off *abi.FileSize) abi.Errno {
		return s.host.FdTell(fd, off)
	})
}

// FdWrite gathers iovs in order and writes them to fd. It returns the number
// of bytes written, which may be short.
func (s *System) FdWrite(fd Fd, iovs []CIoVec) (int, error) {
	ptr, n := ciovecs(iovs)
	nwritten, err := call1(func(nwritten *abi.Size) abi.Errno {
		return s.host.FdWrite(fd, ptr, n, nwritten)
	})
	if err != nil {
		return 0, err
	}
	return bounded("fd_write", nwritten, capacity(iovs)), nil
}

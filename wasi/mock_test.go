package wasi

import (
	"unsafe"

	"github.com/wippyai/wasi-shim/abi"
)

// poison is what mockHost leaves in output slots on failing calls.
const poison = 0xDEADBEEF

// mockHost answers ENOSYS unless a hook is set. calls counts every hook
// invocation.
type mockHost struct {
	abi.NoSys
	calls int

	clockTimeGet      func(id abi.ClockID, precision abi.Timestamp, t *abi.Timestamp) abi.Errno
	fdFdstatGet       func(fd abi.Fd, st *abi.FdStat) abi.Errno
	fdFdstatSetRights func(fd abi.Fd, base, inheriting abi.Rights) abi.Errno
	fdFilestatGet     func(fd abi.Fd, st *abi.FileStat) abi.Errno
	fdPrestatDirName  func(fd abi.Fd, path []byte) abi.Errno
	fdRead            func(fd abi.Fd, iovs []abi.IoVec, nread *abi.Size) abi.Errno
	fdReaddir         func(fd abi.Fd, buf []byte, cookie abi.DirCookie, used *abi.Size) abi.Errno
	fdSeek            func(fd abi.Fd, delta abi.FileDelta, whence abi.Whence, off *abi.FileSize) abi.Errno
	fdWrite           func(fd abi.Fd, iovs []abi.CIoVec, nwritten *abi.Size) abi.Errno
	pathOpen          func(dirfd abi.Fd, path string, fd *abi.Fd) abi.Errno
	pathReadlink      func(fd abi.Fd, path string, buf []byte, used *abi.Size) abi.Errno
	pollOneoff        func(in []abi.Subscription, out []abi.Event, nevents *abi.Size) abi.Errno
	procExit          func(code abi.ExitCode)
	randomGet         func(buf []byte) abi.Errno
	sockRecv          func(sock abi.Fd, iovs []abi.IoVec, flags abi.RiFlags, n *abi.Size, ro *abi.RoFlags) abi.Errno
	sockSend          func(sock abi.Fd, iovs []abi.CIoVec, flags abi.SiFlags, n *abi.Size) abi.Errno
}

var _ abi.Host = (*mockHost)(nil)

func (m *mockHost) ClockTimeGet(id abi.ClockID, precision abi.Timestamp, t *abi.Timestamp) abi.Errno {
	if m.clockTimeGet == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.clockTimeGet(id, precision, t)
}

func (m *mockHost) FdFdstatGet(fd abi.Fd, st *abi.FdStat) abi.Errno {
	if m.fdFdstatGet == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.fdFdstatGet(fd, st)
}

func (m *mockHost) FdFdstatSetRights(fd abi.Fd, base, inheriting abi.Rights) abi.Errno {
	if m.fdFdstatSetRights == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.fdFdstatSetRights(fd, base, inheriting)
}

func (m *mockHost) FdFilestatGet(fd abi.Fd, st *abi.FileStat) abi.Errno {
	if m.fdFilestatGet == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.fdFilestatGet(fd, st)
}

func (m *mockHost) FdPrestatDirName(fd abi.Fd, path *byte, pathLen abi.Size) abi.Errno {
	if m.fdPrestatDirName == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.fdPrestatDirName(fd, unsafe.Slice(path, pathLen))
}

func (m *mockHost) FdRead(fd abi.Fd, iovs *abi.IoVec, iovsLen abi.Size, nread *abi.Size) abi.Errno {
	if m.fdRead == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.fdRead(fd, unsafe.Slice(iovs, iovsLen), nread)
}

func (m *mockHost) FdReaddir(fd abi.Fd, buf *byte, bufLen abi.Size, cookie abi.DirCookie, used *abi.Size) abi.Errno {
	if m.fdReaddir == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.fdReaddir(fd, unsafe.Slice(buf, bufLen), cookie, used)
}

func (m *mockHost) FdSeek(fd abi.Fd, delta abi.FileDelta, whence abi.Whence, off *abi.FileSize) abi.Errno {
	if m.fdSeek == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.fdSeek(fd, delta, whence, off)
}

func (m *mockHost) FdWrite(fd abi.Fd, iovs *abi.CIoVec, iovsLen abi.Size, nwritten *abi.Size) abi.Errno {
	if m.fdWrite == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.fdWrite(fd, unsafe.Slice(iovs, iovsLen), nwritten)
}

func (m *mockHost) PathOpen(dirfd abi.Fd, _ abi.LookupFlags, path *byte, pathLen abi.Size, _ abi.OFlags, _, _ abi.Rights, _ abi.FdFlags, fd *abi.Fd) abi.Errno {
	if m.pathOpen == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.pathOpen(dirfd, unsafe.String(path, pathLen), fd)
}

func (m *mockHost) PathReadlink(fd abi.Fd, path *byte, pathLen abi.Size, buf *byte, bufLen abi.Size, used *abi.Size) abi.Errno {
	if m.pathReadlink == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.pathReadlink(fd, unsafe.String(path, pathLen), unsafe.Slice(buf, bufLen), used)
}

func (m *mockHost) PollOneoff(in *abi.Subscription, out *abi.Event, n abi.Size, nevents *abi.Size) abi.Errno {
	if m.pollOneoff == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.pollOneoff(unsafe.Slice(in, n), unsafe.Slice(out, n), nevents)
}

func (m *mockHost) ProcExit(code abi.ExitCode) {
	m.calls++
	if m.procExit != nil {
		m.procExit(code)
	}
}

func (m *mockHost) RandomGet(buf *byte, bufLen abi.Size) abi.Errno {
	if m.randomGet == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.randomGet(unsafe.Slice(buf, bufLen))
}

func (m *mockHost) SockRecv(sock abi.Fd, iovs *abi.IoVec, iovsLen abi.Size, flags abi.RiFlags, n *abi.Size, ro *abi.RoFlags) abi.Errno {
	if m.sockRecv == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.sockRecv(sock, unsafe.Slice(iovs, iovsLen), flags, n, ro)
}

func (m *mockHost) SockSend(sock abi.Fd, iovs *abi.CIoVec, iovsLen abi.Size, flags abi.SiFlags, n *abi.Size) abi.Errno {
	if m.sockSend == nil {
		return abi.ENOSYS
	}
	m.calls++
	return m.sockSend(sock, unsafe.Slice(iovs, iovsLen), flags, n)
}

func iovBytes(v abi.IoVec) []byte {
	return unsafe.Slice(v.Buf, v.BufLen)
}

func ciovBytes(v abi.CIoVec) []byte {
	return unsafe.Slice(v.Buf, v.BufLen)
}

package engine

import (
	"unsafe"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasi-shim/abi"
	"github.com/wippyai/wasi-shim/engine/internal/proxy"
)

func (h *Host) FdAdvise(fd abi.Fd, offset, length abi.FileSize, advice abi.Advice) abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.FdAdvise, uint64(fd), offset, length, uint64(advice))
}

func (h *Host) FdAllocate(fd abi.Fd, offset, length abi.FileSize) abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.FdAllocate, uint64(fd), offset, length)
}

func (h *Host) FdClose(fd abi.Fd) abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.FdClose, uint64(fd))
}

func (h *Host) FdDatasync(fd abi.Fd) abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.FdDatasync, uint64(fd))
}

func (h *Host) FdFdstatGet(fd abi.Fd, buf *abi.FdStat) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	out := f.alloc(fdstatSize, 8)
	if errno := h.call(proxy.FdFdstatGet, uint64(fd), uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	var st abi.FdStat
	f.decodeFdstat(out, &st)
	return store(f, buf, st)
}

func (h *Host) FdFdstatSetFlags(fd abi.Fd, flags abi.FdFlags) abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.FdFdstatSetFlags, uint64(fd), uint64(flags))
}

func (h *Host) FdFdstatSetRights(fd abi.Fd, rightsBase, rightsInheriting abi.Rights) abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.FdFdstatSetRights, uint64(fd), rightsBase, rightsInheriting)
}

func (h *Host) FdFilestatGet(fd abi.Fd, buf *abi.FileStat) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	out := f.alloc(filestatLen, 8)
	if errno := h.call(proxy.FdFilestatGet, uint64(fd), uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	var st abi.FileStat
	f.decodeFilestat(out, &st)
	return store(f, buf, st)
}

func (h *Host) FdFilestatSetSize(fd abi.Fd, size abi.FileSize) abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.FdFilestatSetSize, uint64(fd), size)
}

func (h *Host) FdFilestatSetTimes(fd abi.Fd, atim, mtim abi.Timestamp, fstFlags abi.FstFlags) abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.FdFilestatSetTimes, uint64(fd), atim, mtim, uint64(fstFlags))
}

func (h *Host) FdPread(fd abi.Fd, iovs *abi.IoVec, iovsLen abi.Size, offset abi.FileSize, nread *abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	vs := unsafe.Slice(iovs, iovsLen)
	arr, data := f.readVecs(vs)
	out := f.alloc(4, 4)
	if errno := h.call(proxy.FdPread, uint64(fd), uint64(arr), uint64(iovsLen), offset, uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	n := f.u32(out)
	f.scatter(vs, data, n)
	return store(f, nread, n)
}

func (h *Host) FdPrestatGet(fd abi.Fd, buf *abi.Prestat) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	out := f.alloc(prestatSize, 4)
	if errno := h.call(proxy.FdPrestatGet, uint64(fd), uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	var p abi.Prestat
	f.decodePrestat(out, &p)
	return store(f, buf, p)
}

func (h *Host) FdPrestatDirName(fd abi.Fd, path *byte, pathLen abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	dst := f.alloc(uint64(pathLen), 1)
	if errno := h.call(proxy.FdPrestatDirName, uint64(fd), uint64(dst), uint64(pathLen)); errno != abi.ESUCCESS {
		return errno
	}
	f.copyOut(path, dst, pathLen)
	return h.done()
}

func (h *Host) FdPwrite(fd abi.Fd, iovs *abi.CIoVec, iovsLen abi.Size, offset abi.FileSize, nwritten *abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	arr := f.writeVecs(unsafe.Slice(iovs, iovsLen))
	out := f.alloc(4, 4)
	if errno := h.call(proxy.FdPwrite, uint64(fd), uint64(arr), uint64(iovsLen), offset, uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	return store(f, nwritten, f.u32(out))
}

func (h *Host) FdRead(fd abi.Fd, iovs *abi.IoVec, iovsLen abi.Size, nread *abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	vs := unsafe.Slice(iovs, iovsLen)
	arr, data := f.readVecs(vs)
	out := f.alloc(4, 4)
	if errno := h.call(proxy.FdRead, uint64(fd), uint64(arr), uint64(iovsLen), uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	n := f.u32(out)
	f.scatter(vs, data, n)
	return store(f, nread, n)
}

func (h *Host) FdReaddir(fd abi.Fd, buf *byte, bufLen abi.Size, cookie abi.DirCookie, bufused *abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	dst := f.alloc(uint64(bufLen), 8)
	out := f.alloc(4, 4)
	if errno := h.call(proxy.FdReaddir, uint64(fd), uint64(dst), uint64(bufLen), cookie, uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	n := f.u32(out)
	f.copyOut(buf, dst, min(n, bufLen))
	return store(f, bufused, n)
}

func (h *Host) FdRenumber(from, to abi.Fd) abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.FdRenumber, uint64(from), uint64(to))
}

func (h *Host) FdSeek(fd abi.Fd, offset abi.FileDelta, whence abi.Whence, newoffset *abi.FileSize) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	out := f.alloc(8, 8)
	if errno := h.call(proxy.FdSeek, uint64(fd), api.EncodeI64(offset), uint64(whenceToPreview1(whence)), uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	return store(f, newoffset, f.u64(out))
}

func (h *Host) FdSync(fd abi.Fd) abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.FdSync, uint64(fd))
}

func (h *Host) FdTell(fd abi.Fd, offset *abi.FileSize) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	out := f.alloc(8, 8)
	if errno := h.call(proxy.FdTell, uint64(fd), uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	return store(f, offset, f.u64(out))
}

func (h *Host) FdWrite(fd abi.Fd, iovs *abi.CIoVec, iovsLen abi.Size, nwritten *abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	arr := f.writeVecs(unsafe.Slice(iovs, iovsLen))
	out := f.alloc(4, 4)
	if errno := h.call(proxy.FdWrite, uint64(fd), uint64(arr), uint64(iovsLen), uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	return store(f, nwritten, f.u32(out))
}

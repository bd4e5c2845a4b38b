package engine

import (
	"github.com/wippyai/wasi-shim/abi"
	"github.com/wippyai/wasi-shim/engine/internal/proxy"
)

func (h *Host) PathCreateDirectory(fd abi.Fd, path *byte, pathLen abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	p := f.raw(path, pathLen)
	return h.call(proxy.PathCreateDirectory, uint64(fd), uint64(p), uint64(pathLen))
}

func (h *Host) PathFilestatGet(fd abi.Fd, flags abi.LookupFlags, path *byte, pathLen abi.Size, buf *abi.FileStat) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	p := f.raw(path, pathLen)
	out := f.alloc(filestatLen, 8)
	if errno := h.call(proxy.PathFilestatGet, uint64(fd), uint64(flags), uint64(p), uint64(pathLen), uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	var st abi.FileStat
	f.decodeFilestat(out, &st)
	return store(f, buf, st)
}

func (h *Host) PathFilestatSetTimes(fd abi.Fd, flags abi.LookupFlags, path *byte, pathLen abi.Size, atim, mtim abi.Timestamp, fstFlags abi.FstFlags) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	p := f.raw(path, pathLen)
	return h.call(proxy.PathFilestatSetTimes, uint64(fd), uint64(flags), uint64(p), uint64(pathLen), atim, mtim, uint64(fstFlags))
}

func (h *Host) PathLink(oldFd abi.Fd, oldFlags abi.LookupFlags, oldPath *byte, oldPathLen abi.Size, newFd abi.Fd, newPath *byte, newPathLen abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	op := f.raw(oldPath, oldPathLen)
	np := f.raw(newPath, newPathLen)
	return h.call(proxy.PathLink, uint64(oldFd), uint64(oldFlags), uint64(op), uint64(oldPathLen), uint64(newFd), uint64(np), uint64(newPathLen))
}

func (h *Host) PathOpen(dirfd abi.Fd, dirflags abi.LookupFlags, path *byte, pathLen abi.Size, oflags abi.OFlags, rightsBase, rightsInheriting abi.Rights, fdflags abi.FdFlags, fd *abi.Fd) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	p := f.raw(path, pathLen)
	out := f.alloc(4, 4)
	errno := h.call(proxy.PathOpen, uint64(dirfd), uint64(dirflags), uint64(p), uint64(pathLen),
		uint64(oflags), rightsBase, rightsInheriting, uint64(fdflags), uint64(out))
	if errno != abi.ESUCCESS {
		return errno
	}
	return store(f, fd, f.u32(out))
}

func (h *Host) PathReadlink(fd abi.Fd, path *byte, pathLen abi.Size, buf *byte, bufLen abi.Size, bufused *abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	p := f.raw(path, pathLen)
	dst := f.alloc(uint64(bufLen), 1)
	out := f.alloc(4, 4)
	if errno := h.call(proxy.PathReadlink, uint64(fd), uint64(p), uint64(pathLen), uint64(dst), uint64(bufLen), uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	n := f.u32(out)
	f.copyOut(buf, dst, min(n, bufLen))
	return store(f, bufused, n)
}

func (h *Host) PathRemoveDirectory(fd abi.Fd, path *byte, pathLen abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	p := f.raw(path, pathLen)
	return h.call(proxy.PathRemoveDirectory, uint64(fd), uint64(p), uint64(pathLen))
}

func (h *Host) PathRename(oldFd abi.Fd, oldPath *byte, oldPathLen abi.Size, newFd abi.Fd, newPath *byte, newPathLen abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	op := f.raw(oldPath, oldPathLen)
	np := f.raw(newPath, newPathLen)
	return h.call(proxy.PathRename, uint64(oldFd), uint64(op), uint64(oldPathLen), uint64(newFd), uint64(np), uint64(newPathLen))
}

func (h *Host) PathSymlink(oldPath *byte, oldPathLen abi.Size, fd abi.Fd, newPath *byte, newPathLen abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	op := f.raw(oldPath, oldPathLen)
	np := f.raw(newPath, newPathLen)
	return h.call(proxy.PathSymlink, uint64(op), uint64(oldPathLen), uint64(fd), uint64(np), uint64(newPathLen))
}

func (h *Host) PathUnlinkFile(fd abi.Fd, path *byte, pathLen abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	p := f.raw(path, pathLen)
	return h.call(proxy.PathUnlinkFile, uint64(fd), uint64(p), uint64(pathLen))
}

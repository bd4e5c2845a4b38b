//go:build wasip1

package abi

import (
	"runtime"
	"structs"
	"unsafe"
)

// Native returns the host of the running process: the wasi_unstable imports
// of the embedding runtime.
func Native() Host {
	return unstableImports{}
}

type unstableImports struct{}

var _ Host = unstableImports{}

// iovec32 is the wasm32 layout shared by iovec and ciovec.
type iovec32 struct {
	_      structs.HostLayout
	buf    uint32
	bufLen uint32
}

// Vectors up to this count are lowered without allocating.
const inlineIovecs = 8

// lower converts Go-pointer vectors to the 32-bit layout the imports expect.
// Linear memory addresses fit in 32 bits on wasm.
func lower(inline *[inlineIovecs]iovec32, iovs *IoVec, n Size) unsafe.Pointer {
	if n == 0 {
		return nil
	}
	dst := inline[:0]
	if n > inlineIovecs {
		dst = make([]iovec32, 0, n)
	}
	for _, v := range unsafe.Slice(iovs, n) {
		dst = append(dst, iovec32{buf: uint32(uintptr(unsafe.Pointer(v.Buf))), bufLen: v.BufLen})
	}
	return unsafe.Pointer(unsafe.SliceData(dst))
}

func lowerConst(inline *[inlineIovecs]iovec32, iovs *CIoVec, n Size) unsafe.Pointer {
	return lower(inline, (*IoVec)(unsafe.Pointer(iovs)), n)
}

func (unstableImports) ClockResGet(id ClockID, resolution *Timestamp) Errno {
	return Errno(clock_res_get(id, unsafe.Pointer(resolution)))
}

func (unstableImports) ClockTimeGet(id ClockID, precision Timestamp, time *Timestamp) Errno {
	return Errno(clock_time_get(id, precision, unsafe.Pointer(time)))
}

func (unstableImports) FdAdvise(fd Fd, offset, length FileSize, advice Advice) Errno {
	return Errno(fd_advise(fd, offset, length, uint32(advice)))
}

func (unstableImports) FdAllocate(fd Fd, offset, length FileSize) Errno {
	return Errno(fd_allocate(fd, offset, length))
}

func (unstableImports) FdClose(fd Fd) Errno {
	return Errno(fd_close(fd))
}

func (unstableImports) FdDatasync(fd Fd) Errno {
	return Errno(fd_datasync(fd))
}

func (unstableImports) FdFdstatGet(fd Fd, buf *FdStat) Errno {
	return Errno(fd_fdstat_get(fd, unsafe.Pointer(buf)))
}

func (unstableImports) FdFdstatSetFlags(fd Fd, flags FdFlags) Errno {
	return Errno(fd_fdstat_set_flags(fd, uint32(flags)))
}

func (unstableImports) FdFdstatSetRights(fd Fd, rightsBase, rightsInheriting Rights) Errno {
	return Errno(fd_fdstat_set_rights(fd, rightsBase, rightsInheriting))
}

func (unstableImports) FdFilestatGet(fd Fd, buf *FileStat) Errno {
	return Errno(fd_filestat_get(fd, unsafe.Pointer(buf)))
}

func (unstableImports) FdFilestatSetSize(fd Fd, size FileSize) Errno {
	return Errno(fd_filestat_set_size(fd, size))
}

func (unstableImports) FdFilestatSetTimes(fd Fd, atim, mtim Timestamp, fstFlags FstFlags) Errno {
	return Errno(fd_filestat_set_times(fd, atim, mtim, uint32(fstFlags)))
}

func (unstableImports) FdPread(fd Fd, iovs *IoVec, iovsLen Size, offset FileSize, nread *Size) Errno {
	var inline [inlineIovecs]iovec32
	errno := fd_pread(fd, lower(&inline, iovs, iovsLen), iovsLen, offset, unsafe.Pointer(nread))
	runtime.KeepAlive(iovs)
	return Errno(errno)
}

func (unstableImports) FdPrestatGet(fd Fd, buf *Prestat) Errno {
	return Errno(fd_prestat_get(fd, unsafe.Pointer(buf)))
}

func (unstableImports) FdPrestatDirName(fd Fd, path *byte, pathLen Size) Errno {
	return Errno(fd_prestat_dir_name(fd, unsafe.Pointer(path), pathLen))
}

func (unstableImports) FdPwrite(fd Fd, iovs *CIoVec, iovsLen Size, offset FileSize, nwritten *Size) Errno {
	var inline [inlineIovecs]iovec32
	errno := fd_pwrite(fd, lowerConst(&inline, iovs, iovsLen), iovsLen, offset, unsafe.Pointer(nwritten))
	runtime.KeepAlive(iovs)
	return Errno(errno)
}

func (unstableImports) FdRead(fd Fd, iovs *IoVec, iovsLen Size, nread *Size) Errno {
	var inline [inlineIovecs]iovec32
	errno := fd_read(fd, lower(&inline, iovs, iovsLen), iovsLen, unsafe.Pointer(nread))
	runtime.KeepAlive(iovs)
	return Errno(errno)
}

func (unstableImports) FdReaddir(fd Fd, buf *byte, bufLen Size, cookie DirCookie, bufused *Size) Errno {
	return Errno(fd_readdir(fd, unsafe.Pointer(buf), bufLen, cookie, unsafe.Pointer(bufused)))
}

func (unstableImports) FdRenumber(from, to Fd) Errno {
	return Errno(fd_renumber(from, to))
}

func (unstableImports) FdSeek(fd Fd, offset FileDelta, whence Whence, newoffset *FileSize) Errno {
	return Errno(fd_seek(fd, offset, uint32(whence), unsafe.Pointer(newoffset)))
}

func (unstableImports) FdSync(fd Fd) Errno {
	return Errno(fd_sync(fd))
}

func (unstableImports) FdTell(fd Fd, offset *FileSize) Errno {
	return Errno(fd_tell(fd, unsafe.Pointer(offset)))
}

func (unstableImports) FdWrite(fd Fd, iovs *CIoVec, iovsLen Size, nwritten *Size) Errno {
	var inline [inlineIovecs]iovec32
	errno := fd_write(fd, lowerConst(&inline, iovs, iovsLen), iovsLen, unsafe.Pointer(nwritten))
	runtime.KeepAlive(iovs)
	return Errno(errno)
}

func (unstableImports) PathCreateDirectory(fd Fd, path *byte, pathLen Size) Errno {
	return Errno(path_create_directory(fd, unsafe.Pointer(path), pathLen))
}

func (unstableImports) PathFilestatGet(fd Fd, flags LookupFlags, path *byte, pathLen Size, buf *FileStat) Errno {
	return Errno(path_filestat_get(fd, flags, unsafe.Pointer(path), pathLen, unsafe.Pointer(buf)))
}

func (unstableImports) PathFilestatSetTimes(fd Fd, flags LookupFlags, path *byte, pathLen Size, atim, mtim Timestamp, fstFlags FstFlags) Errno {
	return Errno(path_filestat_set_times(fd, flags, unsafe.Pointer(path), pathLen, atim, mtim, uint32(fstFlags)))
}

func (unstableImports) PathLink(oldFd Fd, oldFlags LookupFlags, oldPath *byte, oldPathLen Size, newFd Fd, newPath *byte, newPathLen Size) Errno {
	return Errno(path_link(oldFd, oldFlags, unsafe.Pointer(oldPath), oldPathLen, newFd, unsafe.Pointer(newPath), newPathLen))
}

func (unstableImports) PathOpen(dirfd Fd, dirflags LookupFlags, path *byte, pathLen Size, oflags OFlags, rightsBase, rightsInheriting Rights, fdflags FdFlags, fd *Fd) Errno {
	return Errno(path_open(dirfd, dirflags, unsafe.Pointer(path), pathLen, uint32(oflags), rightsBase, rightsInheriting, uint32(fdflags), unsafe.Pointer(fd)))
}

func (unstableImports) PathReadlink(fd Fd, path *byte, pathLen Size, buf *byte, bufLen Size, bufused *Size) Errno {
	return Errno(path_readlink(fd, unsafe.Pointer(path), pathLen, unsafe.Pointer(buf), bufLen, unsafe.Pointer(bufused)))
}

func (unstableImports) PathRemoveDirectory(fd Fd, path *byte, pathLen Size) Errno {
	return Errno(path_remove_directory(fd, unsafe.Pointer(path), pathLen))
}

func (unstableImports) PathRename(oldFd Fd, oldPath *byte, oldPathLen Size, newFd Fd, newPath *byte, newPathLen Size) Errno {
	return Errno(path_rename(oldFd, unsafe.Pointer(oldPath), oldPathLen, newFd, unsafe.Pointer(newPath), newPathLen))
}

func (unstableImports) PathSymlink(oldPath *byte, oldPathLen Size, fd Fd, newPath *byte, newPathLen Size) Errno {
	return Errno(path_symlink(unsafe.Pointer(oldPath), oldPathLen, fd, unsafe.Pointer(newPath), newPathLen))
}

func (unstableImports) PathUnlinkFile(fd Fd, path *byte, pathLen Size) Errno {
	return Errno(path_unlink_file(fd, unsafe.Pointer(path), pathLen))
}

func (unstableImports) PollOneoff(in *Subscription, out *Event, nsubscriptions Size, nevents *Size) Errno {
	return Errno(poll_oneoff(unsafe.Pointer(in), unsafe.Pointer(out), nsubscriptions, unsafe.Pointer(nevents)))
}

func (unstableImports) ProcExit(rval ExitCode) {
	proc_exit(rval)
}

func (unstableImports) ProcRaise(sig Signal) Errno {
	return Errno(proc_raise(uint32(sig)))
}

func (unstableImports) SchedYield() Errno {
	return Errno(sched_yield())
}

func (unstableImports) RandomGet(buf *byte, bufLen Size) Errno {
	return Errno(random_get(unsafe.Pointer(buf), bufLen))
}

func (unstableImports) SockRecv(sock Fd, riData *IoVec, riDataLen Size, riFlags RiFlags, roDatalen *Size, roFlags *RoFlags) Errno {
	var inline [inlineIovecs]iovec32
	errno := sock_recv(sock, lower(&inline, riData, riDataLen), riDataLen, uint32(riFlags), unsafe.Pointer(roDatalen), unsafe.Pointer(roFlags))
	runtime.KeepAlive(riData)
	return Errno(errno)
}

func (unstableImports) SockSend(sock Fd, siData *CIoVec, siDataLen Size, siFlags SiFlags, soDatalen *Size) Errno {
	var inline [inlineIovecs]iovec32
	errno := sock_send(sock, lowerConst(&inline, siData, siDataLen), siDataLen, uint32(siFlags), unsafe.Pointer(soDatalen))
	runtime.KeepAlive(siData)
	return Errno(errno)
}

func (unstableImports) SockShutdown(sock Fd, how SdFlags) Errno {
	return Errno(sock_shutdown(sock, uint32(how)))
}

//go:wasmimport wasi_unstable clock_res_get
//go:noescape
func clock_res_get(id uint32, resolution unsafe.Pointer) uint32

//go:wasmimport wasi_unstable clock_time_get
//go:noescape
func clock_time_get(id uint32, precision uint64, time unsafe.Pointer) uint32

//go:wasmimport wasi_unstable fd_advise
func fd_advise(fd uint32, offset, length uint64, advice uint32) uint32

//go:wasmimport wasi_unstable fd_allocate
func fd_allocate(fd uint32, offset, length uint64) uint32

//go:wasmimport wasi_unstable fd_close
func fd_close(fd uint32) uint32

//go:wasmimport wasi_unstable fd_datasync
func fd_datasync(fd uint32) uint32

//go:wasmimport wasi_unstable fd_fdstat_get
//go:noescape
func fd_fdstat_get(fd uint32, buf unsafe.Pointer) uint32

//go:wasmimport wasi_unstable fd_fdstat_set_flags
func fd_fdstat_set_flags(fd uint32, flags uint32) uint32

//go:wasmimport wasi_unstable fd_fdstat_set_rights
func fd_fdstat_set_rights(fd uint32, rightsBase, rightsInheriting uint64) uint32

//go:wasmimport wasi_unstable fd_filestat_get
//go:noescape
func fd_filestat_get(fd uint32, buf unsafe.Pointer) uint32

//go:wasmimport wasi_unstable fd_filestat_set_size
func fd_filestat_set_size(fd uint32, size uint64) uint32

//go:wasmimport wasi_unstable fd_filestat_set_times
func fd_filestat_set_times(fd uint32, atim, mtim uint64, fstFlags uint32) uint32

//go:wasmimport wasi_unstable fd_pread
//go:noescape
func fd_pread(fd uint32, iovs unsafe.Pointer, iovsLen uint32, offset uint64, nread unsafe.Pointer) uint32

//go:wasmimport wasi_unstable fd_prestat_get
//go:noescape
func fd_prestat_get(fd uint32, buf unsafe.Pointer) uint32

//go:wasmimport wasi_unstable fd_prestat_dir_name
//go:noescape
func fd_prestat_dir_name(fd uint32, path unsafe.Pointer, pathLen uint32) uint32

//go:wasmimport wasi_unstable fd_pwrite
//go:noescape
func fd_pwrite(fd uint32, iovs unsafe.Pointer, iovsLen uint32, offset uint64, nwritten unsafe.Pointer) uint32

//go:wasmimport wasi_unstable fd_read
//go:noescape
func fd_read(fd uint32, iovs unsafe.Pointer, iovsLen uint32, nread unsafe.Pointer) uint32

//go:wasmimport wasi_unstable fd_readdir
//go:noescape
func fd_readdir(fd uint32, buf unsafe.Pointer, bufLen uint32, cookie uint64, bufused unsafe.Pointer) uint32

//go:wasmimport wasi_unstable fd_renumber
func fd_renumber(from, to uint32) uint32

//go:wasmimport wasi_unstable fd_seek
//go:noescape
func fd_seek(fd uint32, offset int64, whence uint32, newoffset unsafe.Pointer) uint32

//go:wasmimport wasi_unstable fd_sync
func fd_sync(fd uint32) uint32

//go:wasmimport wasi_unstable fd_tell
//go:noescape
func fd_tell(fd uint32, offset unsafe.Pointer) uint32

//go:wasmimport wasi_unstable fd_write
//go:noescape
func fd_write(fd uint32, iovs unsafe.Pointer, iovsLen uint32, nwritten unsafe.Pointer) uint32

//go:wasmimport wasi_unstable path_create_directory
//go:noescape
func path_create_directory(fd uint32, path unsafe.Pointer, pathLen uint32) uint32

//go:wasmimport wasi_unstable path_filestat_get
//go:noescape
func path_filestat_get(fd uint32, flags uint32, path unsafe.Pointer, pathLen uint32, buf unsafe.Pointer) uint32

//go:wasmimport wasi_unstable path_filestat_set_times
//go:noescape
func path_filestat_set_times(fd uint32, flags uint32, path unsafe.Pointer, pathLen uint32, atim, mtim uint64, fstFlags uint32) uint32

//go:wasmimport wasi_unstable path_link
//go:noescape
func path_link(oldFd uint32, oldFlags uint32, oldPath unsafe.Pointer, oldPathLen uint32, newFd uint32, newPath unsafe.Pointer, newPathLen uint32) uint32

//go:wasmimport wasi_unstable path_open
//go:noescape
func path_open(dirfd uint32, dirflags uint32, path unsafe.Pointer, pathLen uint32, oflags uint32, rightsBase, rightsInheriting uint64, fdflags uint32, fd unsafe.Pointer) uint32

//go:wasmimport wasi_unstable path_readlink
//go:noescape
func path_readlink(fd uint32, path unsafe.Pointer, pathLen uint32, buf unsafe.Pointer, bufLen uint32, bufused unsafe.Pointer) uint32

//go:wasmimport wasi_unstable path_remove_directory
//go:noescape
func path_remove_directory(fd uint32, path unsafe.Pointer, pathLen uint32) uint32

//go:wasmimport wasi_unstable path_rename
//go:noescape
func path_rename(oldFd uint32, oldPath unsafe.Pointer, oldPathLen uint32, newFd uint32, newPath unsafe.Pointer, newPathLen uint32) uint32

//go:wasmimport wasi_unstable path_symlink
//go:noescape
func path_symlink(oldPath unsafe.Pointer, oldPathLen uint32, fd uint32, newPath unsafe.Pointer, newPathLen uint32) uint32

//go:wasmimport wasi_unstable path_unlink_file
//go:noescape
func path_unlink_file(fd uint32, path unsafe.Pointer, pathLen uint32) uint32

//go:wasmimport wasi_unstable poll_oneoff
//go:noescape
func poll_oneoff(in, out unsafe.Pointer, nsubscriptions uint32, nevents unsafe.Pointer) uint32

//go:wasmimport wasi_unstable proc_exit
func proc_exit(rval uint32)

//go:wasmimport wasi_unstable proc_raise
func proc_raise(sig uint32) uint32

//go:wasmimport wasi_unstable sched_yield
func sched_yield() uint32

//go:wasmimport wasi_unstable random_get
//go:noescape
func random_get(buf unsafe.Pointer, bufLen uint32) uint32

//go:wasmimport wasi_unstable sock_recv
//go:noescape
func sock_recv(sock uint32, riData unsafe.Pointer, riDataLen uint32, riFlags uint32, roDatalen, roFlags unsafe.Pointer) uint32

//go:wasmimport wasi_unstable sock_send
//go:noescape
func sock_send(sock uint32, siData unsafe.Pointer, siDataLen uint32, siFlags uint32, soDatalen unsafe.Pointer) uint32

//go:wasmimport wasi_unstable sock_shutdown
func sock_shutdown(sock uint32, how uint32) uint32

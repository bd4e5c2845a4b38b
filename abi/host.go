package abi

import "os"

// Host is the raw wasi_unstable entry point table.
//
// Pointer parameters follow the C contract: input pointers with a length
// describe caller memory the host reads, output pointers describe caller
// memory the host writes. The host makes no promise about output memory when
// it returns a status other than ESUCCESS.
type Host interface {
	ClockResGet(id ClockID, resolution *Timestamp) Errno
	ClockTimeGet(id ClockID, precision Timestamp, time *Timestamp) Errno

	FdAdvise(fd Fd, offset, length FileSize, advice Advice) Errno
	FdAllocate(fd Fd, offset, length FileSize) Errno
	FdClose(fd Fd) Errno
	FdDatasync(fd Fd) Errno
	FdFdstatGet(fd Fd, buf *FdStat) Errno
	FdFdstatSetFlags(fd Fd, flags FdFlags) Errno
	FdFdstatSetRights(fd Fd, rightsBase, rightsInheriting Rights) Errno
	FdFilestatGet(fd Fd, buf *FileStat) Errno
	FdFilestatSetSize(fd Fd, size FileSize) Errno
	FdFilestatSetTimes(fd Fd, atim, mtim Timestamp, fstFlags FstFlags) Errno
	FdPread(fd Fd, iovs *IoVec, iovsLen Size, offset FileSize, nread *Size) Errno
	FdPrestatGet(fd Fd, buf *Prestat) Errno
	FdPrestatDirName(fd Fd, path *byte, pathLen Size) Errno
	FdPwrite(fd Fd, iovs *CIoVec, iovsLen Size, offset FileSize, nwritten *Size) Errno
	FdRead(fd Fd, iovs *IoVec, iovsLen Size, nread *Size) Errno
	FdReaddir(fd Fd, buf *byte, bufLen Size, cookie DirCookie, bufused *Size) Errno
	FdRenumber(from, to Fd) Errno
	FdSeek(fd Fd, offset FileDelta, whence Whence, newoffset *FileSize) Errno
	FdSync(fd Fd) Errno
	FdTell(fd Fd, offset *FileSize) Errno
	FdWrite(fd Fd, iovs *CIoVec, iovsLen Size, nwritten *Size) Errno

	PathCreateDirectory(fd Fd, path *byte, pathLen Size) Errno
	PathFilestatGet(fd Fd, flags LookupFlags, path *byte, pathLen Size, buf *FileStat) Errno
	PathFilestatSetTimes(fd Fd, flags LookupFlags, path *byte, pathLen Size, atim, mtim Timestamp, fstFlags FstFlags) Errno
	PathLink(oldFd Fd, oldFlags LookupFlags, oldPath *byte, oldPathLen Size, newFd Fd, newPath *byte, newPathLen Size) Errno
	PathOpen(dirfd Fd, dirflags LookupFlags, path *byte, pathLen Size, oflags OFlags, rightsBase, rightsInheriting Rights, fdflags FdFlags, fd *Fd) Errno
	PathReadlink(fd Fd, path *byte, pathLen Size, buf *byte, bufLen Size, bufused *Size) Errno
	PathRemoveDirectory(fd Fd, path *byte, pathLen Size) Errno
	PathRename(oldFd Fd, oldPath *byte, oldPathLen Size, newFd Fd, newPath *byte, newPathLen Size) Errno
	PathSymlink(oldPath *byte, oldPathLen Size, fd Fd, newPath *byte, newPathLen Size) Errno
	PathUnlinkFile(fd Fd, path *byte, pathLen Size) Errno

	PollOneoff(in *Subscription, out *Event, nsubscriptions Size, nevents *Size) Errno

	// ProcExit terminates the process. It does not return.
	ProcExit(rval ExitCode)
	ProcRaise(sig Signal) Errno
	SchedYield() Errno
	RandomGet(buf *byte, bufLen Size) Errno

	SockRecv(sock Fd, riData *IoVec, riDataLen Size, riFlags RiFlags, roDatalen *Size, roFlags *RoFlags) Errno
	SockSend(sock Fd, siData *CIoVec, siDataLen Size, siFlags SiFlags, soDatalen *Size) Errno
	SockShutdown(sock Fd, how SdFlags) Errno
}

// NoSys is a Host without a sandbox behind it. Every call fails with ENOSYS
// except ProcExit, which exits the process.
type NoSys struct{}

var _ Host = NoSys{}

func (NoSys) ClockResGet(ClockID, *Timestamp) Errno { return ENOSYS }
func (NoSys) ClockTimeGet(ClockID, Timestamp, *Timestamp) Errno { return ENOSYS }
func (NoSys) FdAdvise(Fd, FileSize, FileSize, Advice) Errno { return ENOSYS }
func (NoSys) FdAllocate(Fd, FileSize, FileSize) Errno { return ENOSYS }
func (NoSys) FdClose(Fd) Errno { return ENOSYS }
func (NoSys) FdDatasync(Fd) Errno { return ENOSYS }
func (NoSys) FdFdstatGet(Fd, *FdStat) Errno { return ENOSYS }
func (NoSys) FdFdstatSetFlags(Fd, FdFlags) Errno { return ENOSYS }
func (NoSys) FdFdstatSetRights(Fd, Rights, Rights) Errno { return ENOSYS }
func (NoSys) FdFilestatGet(Fd, *FileStat) Errno { return ENOSYS }
func (NoSys) FdFilestatSetSize(Fd, FileSize) Errno { return ENOSYS }
func (NoSys) FdFilestatSetTimes(Fd, Timestamp, Timestamp, FstFlags) Errno { return ENOSYS }
func (NoSys) FdPread(Fd, *IoVec, Size, FileSize, *Size) Errno { return ENOSYS }
func (NoSys) FdPrestatGet(Fd, *Prestat) Errno { return ENOSYS }
func (NoSys) FdPrestatDirName(Fd, *byte, Size) Errno { return ENOSYS }
func (NoSys) FdPwrite(Fd, *CIoVec, Size, FileSize, *Size) Errno { return ENOSYS }
func (NoSys) FdRead(Fd, *IoVec, Size, *Size) Errno { return ENOSYS }
func (NoSys) FdReaddir(Fd, *byte, Size, DirCookie, *Size) Errno { return ENOSYS }
func (NoSys) FdRenumber(Fd, Fd) Errno { return ENOSYS }
func (NoSys) FdSeek(Fd, FileDelta, Whence, *FileSize) Errno { return ENOSYS }
func (NoSys) FdSync(Fd) Errno { return ENOSYS }
func (NoSys) FdTell(Fd, *FileSize) Errno { return ENOSYS }
func (NoSys) FdWrite(Fd, *CIoVec, Size, *Size) Errno { return ENOSYS }
func (NoSys) PathCreateDirectory(Fd, *byte, Size) Errno { return ENOSYS }
func (NoSys) PathFilestatGet(Fd, LookupFlags, *byte, Size, *FileStat) Errno {
	return ENOSYS
}
func (NoSys) PathFilestatSetTimes(Fd, LookupFlags, *byte, Size, Timestamp, Timestamp, FstFlags) Errno {
	return ENOSYS
}
func (NoSys) PathLink(Fd, LookupFlags, *byte, Size, Fd, *byte, Size) Errno { return ENOSYS }
func (NoSys) PathOpen(Fd, LookupFlags, *byte, Size, OFlags, Rights, Rights, FdFlags, *Fd) Errno {
	return ENOSYS
}
func (NoSys) PathReadlink(Fd, *byte, Size, *byte, Size, *Size) Errno { return ENOSYS }
func (NoSys) PathRemoveDirectory(Fd, *byte, Size) Errno { return ENOSYS }
func (NoSys) PathRename(Fd, *byte, Size, Fd, *byte, Size) Errno { return ENOSYS }
func (NoSys) PathSymlink(*byte, Size, Fd, *byte, Size) Errno { return ENOSYS }
func (NoSys) PathUnlinkFile(Fd, *byte, Size) Errno { return ENOSYS }
func (NoSys) PollOneoff(*Subscription, *Event, Size, *Size) Errno { return ENOSYS }
func (NoSys) ProcExit(rval ExitCode) { os.Exit(int(rval)) }
func (NoSys) ProcRaise(Signal) Errno { return ENOSYS }
func (NoSys) SchedYield() Errno { return ENOSYS }
func (NoSys) RandomGet(*byte, Size) Errno { return ENOSYS }
func (NoSys) SockRecv(Fd, *IoVec, Size, RiFlags, *Size, *RoFlags) Errno {
	return ENOSYS
}
func (NoSys) SockSend(Fd, *CIoVec, Size, SiFlags, *Size) Errno { return ENOSYS }
func (NoSys) SockShutdown(Fd, SdFlags) Errno { return ENOSYS }

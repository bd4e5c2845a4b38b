package abi

import (
	"structs"
	"unsafe"
)

type (
	Advice        = uint8
	ClockID       = uint32
	Device        = uint64
	DirCookie     = uint64
	Errno         = uint16
	EventRwFlags  = uint16
	EventType     = uint8
	ExitCode      = uint32
	Fd            = uint32
	FdFlags       = uint16
	FileDelta     = int64
	FileSize      = uint64
	FileType      = uint8
	FstFlags      = uint16
	Inode         = uint64
	LinkCount     = uint32
	LookupFlags   = uint32
	OFlags        = uint16
	PreopenType   = uint8
	RiFlags       = uint16
	Rights        = uint64
	RoFlags       = uint16
	SdFlags       = uint8
	SiFlags       = uint16
	Signal        = uint8
	SubclockFlags = uint16
	Timestamp     = uint64
	Userdata      = uint64
	Whence        = uint8
)

// Size is the wasm32 usize used for lengths and counts.
type Size = uint32

// Dirent is the header of one entry in a fd_readdir buffer. The entry name
// (Namlen bytes, not NUL terminated) follows the header directly.
type Dirent struct {
	_      structs.HostLayout
	Next   DirCookie
	Ino    Inode
	Namlen uint32
	Type   FileType
}

// DirentSize is the encoded size of a Dirent header.
const DirentSize = 24

// FdStat is the result of fd_fdstat_get.
type FdStat struct {
	_                  structs.HostLayout
	FsFiletype         FileType
	FsFlags            FdFlags
	FsRightsBase       Rights
	FsRightsInheriting Rights
}

// FileStat is the result of fd_filestat_get and path_filestat_get.
type FileStat struct {
	_        structs.HostLayout
	Dev      Device
	Ino      Inode
	Filetype FileType
	Nlink    LinkCount
	Size     FileSize
	Atim     Timestamp
	Mtim     Timestamp
	Ctim     Timestamp
}

// IoVec points at caller memory the host may write into.
type IoVec struct {
	Buf    *byte
	BufLen Size
}

// CIoVec points at caller memory the host only reads.
type CIoVec struct {
	Buf    *byte
	BufLen Size
}

// Prestat describes a pre-opened descriptor.
type Prestat struct {
	_      structs.HostLayout
	PrType PreopenType
	Dir    PrestatDir
}

// PrestatDir is the PREOPENTYPE_DIR arm of Prestat.
type PrestatDir struct {
	_         structs.HostLayout
	PrNameLen Size
}

// SubscriptionClock is the EVENTTYPE_CLOCK arm of Subscription.
type SubscriptionClock struct {
	_          structs.HostLayout
	Identifier Userdata
	ClockID    ClockID
	Timeout    Timestamp
	Precision  Timestamp
	Flags      SubclockFlags
}

// SubscriptionFdReadwrite is the EVENTTYPE_FD_READ/EVENTTYPE_FD_WRITE arm of
// Subscription.
type SubscriptionFdReadwrite struct {
	_  structs.HostLayout
	Fd Fd
}

// Subscription is one poll_oneoff request. The payload is a union selected by
// Type; use the accessors to read and write it.
type Subscription struct {
	_        structs.HostLayout
	Userdata Userdata
	Type     EventType
	u        [5]uint64
}

// Clock returns the clock arm of the union. Only meaningful when Type is
// EVENTTYPE_CLOCK.
func (s *Subscription) Clock() SubscriptionClock {
	return *(*SubscriptionClock)(unsafe.Pointer(&s.u))
}

// SetClock stores c in the union and sets Type to EVENTTYPE_CLOCK.
func (s *Subscription) SetClock(c SubscriptionClock) {
	s.u = [5]uint64{}
	s.Type = EVENTTYPE_CLOCK
	*(*SubscriptionClock)(unsafe.Pointer(&s.u)) = c
}

// FdReadwrite returns the descriptor arm of the union. Only meaningful when
// Type is EVENTTYPE_FD_READ or EVENTTYPE_FD_WRITE.
func (s *Subscription) FdReadwrite() SubscriptionFdReadwrite {
	return *(*SubscriptionFdReadwrite)(unsafe.Pointer(&s.u))
}

// SetFdReadwrite stores rw in the union and sets Type to typ.
func (s *Subscription) SetFdReadwrite(typ EventType, rw SubscriptionFdReadwrite) {
	s.u = [5]uint64{}
	s.Type = typ
	*(*SubscriptionFdReadwrite)(unsafe.Pointer(&s.u)) = rw
}

// EventFdReadwrite is the payload of a descriptor readiness event.
type EventFdReadwrite struct {
	_      structs.HostLayout
	Nbytes FileSize
	Flags  EventRwFlags
}

// Event is one poll_oneoff result.
type Event struct {
	_           structs.HostLayout
	Userdata    Userdata
	Error       Errno
	Type        EventType
	FdReadwrite EventFdReadwrite
}

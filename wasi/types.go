package wasi

import "github.com/wippyai/wasi-shim/abi"

// Primitive types of the ABI. They are aliases so values flow between this
// package and abi without conversion.
type (
	Advice        = abi.Advice
	ClockID       = abi.ClockID
	Device        = abi.Device
	DirCookie     = abi.DirCookie
	EventRwFlags  = abi.EventRwFlags
	EventType     = abi.EventType
	ExitCode      = abi.ExitCode
	Fd            = abi.Fd
	FdFlags       = abi.FdFlags
	FileDelta     = abi.FileDelta
	FileSize      = abi.FileSize
	FileType      = abi.FileType
	FstFlags      = abi.FstFlags
	Inode         = abi.Inode
	LinkCount     = abi.LinkCount
	LookupFlags   = abi.LookupFlags
	OFlags        = abi.OFlags
	PreopenType   = abi.PreopenType
	RiFlags       = abi.RiFlags
	Rights        = abi.Rights
	RoFlags       = abi.RoFlags
	SdFlags       = abi.SdFlags
	SiFlags       = abi.SiFlags
	Signal        = abi.Signal
	SubclockFlags = abi.SubclockFlags
	Timestamp     = abi.Timestamp
	Userdata      = abi.Userdata
	Whence        = abi.Whence
)

// Fixed-layout records, field for field the ABI's.
type (
	Dirent                  = abi.Dirent
	Event                   = abi.Event
	EventFdReadwrite        = abi.EventFdReadwrite
	FdStat                  = abi.FdStat
	FileStat                = abi.FileStat
	Prestat                 = abi.Prestat
	PrestatDir              = abi.PrestatDir
	Subscription            = abi.Subscription
	SubscriptionClock       = abi.SubscriptionClock
	SubscriptionFdReadwrite = abi.SubscriptionFdReadwrite
)

// Received is the outcome of SockRecv. Both fields come from the same host
// call.
type Received struct {
	N     int
	Flags RoFlags
}

// Truncated reports whether the host dropped part of the message.
func (r Received) Truncated() bool {
	return r.Flags&SockRecvDataTruncated != 0
}

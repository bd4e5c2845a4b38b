package engine

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/wasi-shim/abi"
)

// wazero implements wasi_snapshot_preview1. The records and enums below are
// where that ABI differs from wasi_unstable; everything else is shared.

// whenceToPreview1 maps wasi_unstable whence values (CUR=0, END=1, SET=2)
// onto preview1 (SET=0, CUR=1, END=2). Unknown values pass through so the
// host rejects them.
func whenceToPreview1(w abi.Whence) uint32 {
	switch w {
	case abi.WHENCE_SET:
		return 0
	case abi.WHENCE_CUR:
		return 1
	case abi.WHENCE_END:
		return 2
	}
	return uint32(w)
}

// Preview1 filestat: nlink is u64, so every later field moves by 8.
const (
	filestatLen      = 64
	filestatDev      = 0
	filestatIno      = 8
	filestatFiletype = 16
	filestatNlink    = 24
	filestatSize     = 32
	filestatAtim     = 40
	filestatMtim     = 48
	filestatCtim     = 56
)

// decodeFilestat reads a preview1 filestat at off. A link count that does
// not fit the unstable record is reported as EOVERFLOW.
func (f *frame) decodeFilestat(off uint32, st *abi.FileStat) {
	b := f.read(off, filestatLen)
	if b == nil {
		return
	}
	le := binary.LittleEndian
	nlink := le.Uint64(b[filestatNlink:])
	if nlink > math.MaxUint32 {
		f.fail(abi.EOVERFLOW)
		return
	}
	*st = abi.FileStat{
		Dev:      le.Uint64(b[filestatDev:]),
		Ino:      le.Uint64(b[filestatIno:]),
		Filetype: b[filestatFiletype],
		Nlink:    uint32(nlink),
		Size:     le.Uint64(b[filestatSize:]),
		Atim:     le.Uint64(b[filestatAtim:]),
		Mtim:     le.Uint64(b[filestatMtim:]),
		Ctim:     le.Uint64(b[filestatCtim:]),
	}
}

const (
	fdstatSize        = 24
	fdstatFlags       = 2
	fdstatRightsBase  = 8
	fdstatRightsInher = 16
)

func (f *frame) decodeFdstat(off uint32, st *abi.FdStat) {
	b := f.read(off, fdstatSize)
	if b == nil {
		return
	}
	*st = abi.FdStat{
		FsFiletype:         b[0],
		FsFlags:            binary.LittleEndian.Uint16(b[fdstatFlags:]),
		FsRightsBase:       binary.LittleEndian.Uint64(b[fdstatRightsBase:]),
		FsRightsInheriting: binary.LittleEndian.Uint64(b[fdstatRightsInher:]),
	}
}

const prestatSize = 8

func (f *frame) decodePrestat(off uint32, p *abi.Prestat) {
	b := f.read(off, prestatSize)
	if b == nil {
		return
	}
	*p = abi.Prestat{
		PrType: b[0],
		Dir:    abi.PrestatDir{PrNameLen: binary.LittleEndian.Uint32(b[4:])},
	}
}

// Preview1 subscription: the clock arm has no identifier, so it is 8 bytes
// shorter and the record is 48 bytes.
const (
	subscriptionSize      = 48
	subscriptionType      = 8
	subscriptionClockID   = 16
	subscriptionTimeout   = 24
	subscriptionPrecision = 32
	subscriptionFlags     = 40
	subscriptionFd        = 16
)

// encodeSubscriptions writes subs in preview1 layout and returns the array
// offset.
func (f *frame) encodeSubscriptions(subs []abi.Subscription) uint32 {
	arr := f.alloc(uint64(len(subs))*subscriptionSize, 8)
	if f.err != abi.ESUCCESS {
		return 0
	}
	for i := range subs {
		s := &subs[i]
		off := arr + uint32(i)*subscriptionSize
		var rec [subscriptionSize]byte
		le := binary.LittleEndian
		le.PutUint64(rec[0:], s.Userdata)
		rec[subscriptionType] = s.Type
		switch s.Type {
		case abi.EVENTTYPE_CLOCK:
			c := s.Clock()
			le.PutUint32(rec[subscriptionClockID:], c.ClockID)
			le.PutUint64(rec[subscriptionTimeout:], c.Timeout)
			le.PutUint64(rec[subscriptionPrecision:], c.Precision)
			le.PutUint16(rec[subscriptionFlags:], c.Flags)
		default:
			le.PutUint32(rec[subscriptionFd:], s.FdReadwrite().Fd)
		}
		if !f.mem.Write(off, rec[:]) {
			f.fail(abi.EFAULT)
		}
	}
	return arr
}

// Events are laid out the same in both ABIs.
const (
	eventSize   = 32
	eventErrno  = 8
	eventType   = 10
	eventNbytes = 16
	eventFlags  = 24
)

func (f *frame) decodeEvents(off uint32, out []abi.Event) {
	for i := range out {
		b := f.read(off+uint32(i)*eventSize, eventSize)
		if b == nil {
			return
		}
		le := binary.LittleEndian
		out[i] = abi.Event{
			Userdata: le.Uint64(b[0:]),
			Error:    le.Uint16(b[eventErrno:]),
			Type:     b[eventType],
			FdReadwrite: abi.EventFdReadwrite{
				Nbytes: le.Uint64(b[eventNbytes:]),
				Flags:  le.Uint16(b[eventFlags:]),
			},
		}
	}
}

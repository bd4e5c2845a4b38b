package wasi

import (
	"math"
	"unsafe"

	"github.com/wippyai/wasi-shim/abi"
)

// IoVec is a mutable view over caller memory that a scatter read fills.
// A []IoVec has the layout of the ABI's iovec array and is handed to the host
// without copying.
type IoVec struct {
	raw abi.IoVec
}

// CIoVec is a read-only view over caller memory that a gather write drains.
type CIoVec struct {
	raw abi.CIoVec
}

// NewIoVec views b. Views longer than the 32-bit ABI can describe are
// truncated to the largest describable length.
func NewIoVec(b []byte) IoVec {
	return IoVec{raw: abi.IoVec{Buf: unsafe.SliceData(b), BufLen: sizeOf(len(b))}}
}

// NewCIoVec views b for writing to the host.
func NewCIoVec(b []byte) CIoVec {
	return CIoVec{raw: abi.CIoVec{Buf: unsafe.SliceData(b), BufLen: sizeOf(len(b))}}
}

// CIoVecString views s for writing to the host without copying it.
func CIoVecString(s string) CIoVec {
	return CIoVec{raw: abi.CIoVec{Buf: unsafe.StringData(s), BufLen: sizeOf(len(s))}}
}

// Bytes returns the viewed memory.
func (v IoVec) Bytes() []byte {
	return unsafe.Slice(v.raw.Buf, v.raw.BufLen)
}

// Len returns the capacity of the view.
func (v IoVec) Len() int {
	return int(v.raw.BufLen)
}

// Bytes returns the viewed memory. It must not be modified: the view may be
// backed by a string.
func (v CIoVec) Bytes() []byte {
	return unsafe.Slice(v.raw.Buf, v.raw.BufLen)
}

// Len returns the length of the view.
func (v CIoVec) Len() int {
	return int(v.raw.BufLen)
}

type view interface {
	IoVec | CIoVec
	Len() int
}

// capacity is the sum of the view lengths, the upper bound for a transfer
// count reported by the host.
func capacity[V view](vs []V) uint64 {
	var n uint64
	for _, v := range vs {
		n += uint64(v.Len())
	}
	return n
}

func sizeOf(n int) abi.Size {
	if uint64(n) > math.MaxUint32 {
		return math.MaxUint32
	}
	return abi.Size(n)
}

func iovecs(vs []IoVec) (*abi.IoVec, abi.Size) {
	return (*abi.IoVec)(unsafe.Pointer(unsafe.SliceData(vs))), sizeOf(len(vs))
}

func ciovecs(vs []CIoVec) (*abi.CIoVec, abi.Size) {
	return (*abi.CIoVec)(unsafe.Pointer(unsafe.SliceData(vs))), sizeOf(len(vs))
}

func bytesArg(b []byte) (*byte, abi.Size) {
	return unsafe.SliceData(b), sizeOf(len(b))
}

func stringArg(s string) (*byte, abi.Size) {
	return unsafe.StringData(s), sizeOf(len(s))
}

package engine

import (
	"math"
	"unsafe"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasi-shim/abi"
)

const (
	pageSize = 65536

	// frameBase keeps offset 0 free so no marshaled argument is a null
	// pointer.
	frameBase = 16
)

// frame is a bump allocator over the proxy memory. It is reset before every
// call, so nothing placed in it outlives the call it was placed for.
//
// The first failure sticks: later allocations return 0 and err reports the
// status the call should fail with.
type frame struct {
	mem api.Memory
	top uint32
	err abi.Errno
}

func (f *frame) reset() {
	f.top = frameBase
	f.err = abi.ESUCCESS
}

func (f *frame) fail(errno abi.Errno) {
	if f.err == abi.ESUCCESS {
		f.err = errno
	}
}

// alloc reserves size bytes aligned to align, growing the memory if needed.
func (f *frame) alloc(size uint64, align uint32) uint32 {
	if f.err != abi.ESUCCESS {
		return 0
	}
	off := (uint64(f.top) + uint64(align) - 1) &^ (uint64(align) - 1)
	end := off + size
	if end > math.MaxUint32 {
		f.fail(abi.ENOMEM)
		return 0
	}
	if have := uint64(f.mem.Size()); end > have {
		pages := (end - have + pageSize - 1) / pageSize
		if _, ok := f.mem.Grow(uint32(pages)); !ok {
			f.fail(abi.ENOMEM)
			return 0
		}
	}
	f.top = uint32(end)
	return uint32(off)
}

// bytes copies b into the frame.
func (f *frame) bytes(b []byte) uint32 {
	off := f.alloc(uint64(len(b)), 1)
	if f.err == abi.ESUCCESS && !f.mem.Write(off, b) {
		f.fail(abi.EFAULT)
	}
	return off
}

// raw copies n bytes starting at p into the frame.
func (f *frame) raw(p *byte, n abi.Size) uint32 {
	if n == 0 {
		return f.alloc(0, 1)
	}
	return f.bytes(unsafe.Slice(p, n))
}

// read returns a view of n bytes at off. The view aliases guest memory.
func (f *frame) read(off, n uint32) []byte {
	if f.err != abi.ESUCCESS {
		return nil
	}
	b, ok := f.mem.Read(off, n)
	if !ok {
		f.fail(abi.EFAULT)
	}
	return b
}

func (f *frame) u32(off uint32) uint32 {
	v, ok := f.mem.ReadUint32Le(off)
	if !ok {
		f.fail(abi.EFAULT)
	}
	return v
}

func (f *frame) u64(off uint32) uint64 {
	v, ok := f.mem.ReadUint64Le(off)
	if !ok {
		f.fail(abi.EFAULT)
	}
	return v
}

func (f *frame) u16(off uint32) uint16 {
	b := f.read(off, 2)
	if b == nil {
		return 0
	}
	return uint16(b[0]) | uint16(b[1])<<8
}

func (f *frame) putU32(off, v uint32) {
	if !f.mem.WriteUint32Le(off, v) {
		f.fail(abi.EFAULT)
	}
}

// copyOut copies n bytes at off into caller memory at dst.
func (f *frame) copyOut(dst *byte, off, n uint32) {
	if n == 0 {
		return
	}
	if src := f.read(off, n); src != nil {
		copy(unsafe.Slice(dst, n), src)
	}
}

// store moves v into dst unless the frame has failed.
func store[T any](f *frame, dst *T, v T) abi.Errno {
	if f.err != abi.ESUCCESS {
		return f.err
	}
	*dst = v
	return abi.ESUCCESS
}

// iovecSize is the wasm32 size of an iovec: buf and len, both u32.
const iovecSize = 8

// readVecs lays out destination buffers for a scatter read: one contiguous
// data region sized to the total capacity and an iovec array slicing it in
// order. It returns the array and the data region offsets.
func (f *frame) readVecs(vs []abi.IoVec) (arr, data uint32) {
	var total uint64
	for _, v := range vs {
		total += uint64(v.BufLen)
	}
	data = f.alloc(total, 1)
	arr = f.alloc(uint64(len(vs))*iovecSize, 4)
	if f.err != abi.ESUCCESS {
		return 0, 0
	}
	off := data
	for i, v := range vs {
		f.putU32(arr+uint32(i)*iovecSize, off)
		f.putU32(arr+uint32(i)*iovecSize+4, v.BufLen)
		off += v.BufLen
	}
	return arr, data
}

// scatter copies n bytes of the data region back into vs in order.
func (f *frame) scatter(vs []abi.IoVec, data, n uint32) {
	src := f.read(data, n)
	for _, v := range vs {
		if len(src) == 0 {
			return
		}
		k := copy(unsafe.Slice(v.Buf, v.BufLen), src)
		src = src[k:]
	}
}

// writeVecs copies the sources of a gather write into the frame and returns
// the iovec array describing them.
func (f *frame) writeVecs(vs []abi.CIoVec) uint32 {
	offs := make([]uint32, len(vs))
	for i, v := range vs {
		offs[i] = f.raw(v.Buf, v.BufLen)
	}
	arr := f.alloc(uint64(len(vs))*iovecSize, 4)
	if f.err != abi.ESUCCESS {
		return 0
	}
	for i, v := range vs {
		f.putU32(arr+uint32(i)*iovecSize, offs[i])
		f.putU32(arr+uint32(i)*iovecSize+4, v.BufLen)
	}
	return arr
}

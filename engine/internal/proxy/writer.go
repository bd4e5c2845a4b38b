package proxy

import (
	"bytes"
	"encoding/binary"
)

// writer accumulates wasm binary encoding.
type writer struct {
	buf bytes.Buffer
}

func (w *writer) bytes() []byte {
	return w.buf.Bytes()
}

func (w *writer) byte(b byte) {
	w.buf.WriteByte(b)
}

func (w *writer) write(data []byte) {
	w.buf.Write(data)
}

// u32 writes an unsigned LEB128 encoded uint32.
func (w *writer) u32(v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		if v == 0 {
			break
		}
	}
}

// name writes a length-prefixed UTF-8 name.
func (w *writer) name(s string) {
	w.u32(uint32(len(s)))
	w.buf.WriteString(s)
}

// u32le writes a fixed 4-byte little-endian uint32.
func (w *writer) u32le(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// section writes id, the LEB128 size of body, then body.
func (w *writer) section(id byte, body *writer) {
	w.byte(id)
	w.u32(uint32(body.buf.Len()))
	w.write(body.bytes())
}

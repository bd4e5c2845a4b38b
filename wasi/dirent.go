package wasi

import (
	"encoding/binary"
	"iter"

	"github.com/wippyai/wasi-shim/abi"
)

// Dirents iterates the entries FdReaddir wrote to buf, which should be
// sliced to the returned length. It stops at a trailing entry the host had
// to cut short; resume with the cookie of the last entry yielded.
func Dirents(buf []byte) iter.Seq2[Dirent, string] {
	return func(yield func(Dirent, string) bool) {
		b := buf
		for len(b) >= abi.DirentSize {
			d := Dirent{
				Next:   binary.LittleEndian.Uint64(b[0:]),
				Ino:    binary.LittleEndian.Uint64(b[8:]),
				Namlen: binary.LittleEndian.Uint32(b[16:]),
				Type:   b[20],
			}
			b = b[abi.DirentSize:]
			if uint64(d.Namlen) > uint64(len(b)) {
				return
			}
			name := string(b[:d.Namlen])
			b = b[d.Namlen:]
			if !yield(d, name) {
				return
			}
		}
	}
}

// package bytebuf provides a bounds checked view of a byte slice,
// for writing and reading little-endian fixed width values.
package bytebuf

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

type Buf struct {
	// offset is the offset in bytes from the start of d
	offset int
	// l is the length of the buffer.  The end is offset + l
	l int
	d []byte
}

// New allocates a zeroed buffer of l bytes.
func New(l int) Buf {
	return Buf{
		l: l,
		d: make([]byte, l),
	}
}

// FromBytes returns a Buf backed by d.  d is not copied.
func FromBytes(d []byte) Buf {
	return Buf{d: d, l: len(d)}
}

func (b Buf) Len() int {
	return b.l
}

func (b Buf) Bytes() []byte {
	if b.offset != 0 || b.l != len(b.d) {
		panic("Bytes can only be called on the original buffer")
	}
	return b.d
}

func (b Buf) Slice(beg, end int) Buf {
	if beg < 0 || end < beg || end > b.Len() {
		panic(fmt.Sprintf("bytebuf: out of bounds slice. beg=%v end=%v. len=%d", beg, end, b.Len()))
	}
	return Buf{
		offset: b.offset + beg,
		l:      end - beg,
		d:      b.d,
	}
}

func (b Buf) Put8(i int, x uint8) {
	b.window(i, 1)[0] = x
}

func (b Buf) Put16(i int, x uint16) {
	binary.LittleEndian.PutUint16(b.window(i, 2), x)
}

func (b Buf) Put32(i int, x uint32) {
	binary.LittleEndian.PutUint32(b.window(i, 4), x)
}

func (b Buf) Put64(i int, x uint64) {
	binary.LittleEndian.PutUint64(b.window(i, 8), x)
}

func (b Buf) PutBytes(i int, x []byte) {
	copy(b.window(i, len(x)), x)
}

func (b Buf) Get8(i int) uint8 {
	return b.window(i, 1)[0]
}

func (b Buf) Get16(i int) uint16 {
	return binary.LittleEndian.Uint16(b.window(i, 2))
}

func (b Buf) Get32(i int) uint32 {
	return binary.LittleEndian.Uint32(b.window(i, 4))
}

func (b Buf) Get64(i int) uint64 {
	return binary.LittleEndian.Uint64(b.window(i, 8))
}

// GetBytes copies the bytes in [beg, end) into dst.
func (b Buf) GetBytes(beg, end int, dst []byte) {
	copy(dst, b.window(beg, end-beg))
}

// IndexByte returns the index of the first x in the buffer, or -1.
func (b Buf) IndexByte(x byte) int {
	return bytes.IndexByte(b.window(0, b.l), x)
}

// window returns the n bytes starting at i, panicking if they are not all inside the buffer.
func (b Buf) window(i, n int) []byte {
	if i < 0 || n < 0 || i+n > b.l {
		panic(fmt.Sprintf("bytebuf: out of bounds access. i=%d n=%d. len=%d", i, n, b.l))
	}
	i += b.offset
	return b.d[i : i+n : i+n]
}

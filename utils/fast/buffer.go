package fast

import (
	"encoding/binary"
)

// buffer.go provides a lightweight, non-thread-safe cursor over byte slices
// for fixed-layout serialization.
//
// Purpose:
// - Standard Go `bytes.Buffer`/`bufio` are overkill for linear, size-prevalidated
//   serialization: the Writer simply appends to a slice, the Reader increments an index.
// - All multi-byte integers are little-endian, matching the on-disk contract
//   state format.
// - The Reader performs NO bounds checking (it panics past the end). Callers are
//   expected to validate the total buffer size up front, which makes every
//   subsequent fixed-width read provably in-bounds.

type Reader struct {
	// buf is the underlying data source.
	buf []byte
	// offset tracks the current reading position.
	offset int
}

type Writer struct {
	// buf is the accumulating byte slice.
	buf []byte
}

// NewReader creates a Reader to consume the provided byte slice.
func NewReader(bb []byte) *Reader {
	return &Reader{
		buf:    bb,
		offset: 0,
	}
}

// NewWriter creates a Writer that appends to the provided initial slice.
// Usually called with `make([]byte, 0, capacity)` to pre-allocate.
func NewWriter(bb []byte) *Writer {
	return &Writer{
		buf: bb,
	}
}

// WriteByte appends a single byte to the buffer.
func (b *Writer) WriteByte(v byte) {
	b.buf = append(b.buf, v)
}

// Write appends a slice of bytes to the buffer.
func (b *Writer) Write(v []byte) {
	b.buf = append(b.buf, v...)
}

// WriteU16 appends a little-endian uint16.
func (b *Writer) WriteU16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

// WriteU32 appends a little-endian uint32.
func (b *Writer) WriteU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

// WriteU64 appends a little-endian uint64.
func (b *Writer) WriteU64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

// Pad appends n zero bytes. The pinned state layouts require padding runs
// to be zero-filled on encode.
func (b *Writer) Pad(n int) {
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, 0)
	}
}

// Read consumes and returns the next 'n' bytes.
//
// The returned slice shares memory with the underlying buffer.
// Panics if fewer than n bytes remain.
func (b *Reader) Read(n int) []byte {
	res := b.buf[b.offset : b.offset+n]
	b.offset += n
	return res
}

// ReadByte consumes and returns a single byte. Panics if the buffer is empty.
func (b *Reader) ReadByte() byte {
	res := b.buf[b.offset]
	b.offset++
	return res
}

// ReadU16 consumes a little-endian uint16.
func (b *Reader) ReadU16() uint16 {
	return binary.LittleEndian.Uint16(b.Read(2))
}

// ReadU32 consumes a little-endian uint32.
func (b *Reader) ReadU32() uint32 {
	return binary.LittleEndian.Uint32(b.Read(4))
}

// ReadU64 consumes a little-endian uint64.
func (b *Reader) ReadU64() uint64 {
	return binary.LittleEndian.Uint64(b.Read(8))
}

// Skip advances the cursor past n bytes without interpreting them.
// Padding runs are ignored on decode, never relied upon.
func (b *Reader) Skip(n int) {
	_ = b.buf[b.offset : b.offset+n]
	b.offset += n
}

// Position returns the current cursor index of the Reader.
func (b *Reader) Position() int {
	return b.offset
}

// Bytes returns the entire underlying buffer of the Reader.
func (b *Reader) Bytes() []byte {
	return b.buf
}

// Bytes returns the accumulated content of the Writer.
func (b *Writer) Bytes() []byte {
	return b.buf
}

// Empty reports whether the Reader has consumed the whole buffer.
func (b *Reader) Empty() bool {
	return len(b.buf) == b.offset
}

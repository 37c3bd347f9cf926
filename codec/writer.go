package codec

import (
	"bytes"
	"encoding/binary"

	"github.com/nan01ab/neo/protocol"
)

// Writer builds the little-endian, length-prefixed wire form.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated wire bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// WriteByte writes a single byte.
func (w *Writer) WriteByte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes raw bytes with no length prefix.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.Write(b)
}

// WriteUint32LE writes a little-endian uint32.
func (w *Writer) WriteUint32LE(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint64LE writes a little-endian uint64.
func (w *Writer) WriteUint64LE(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteVarInt writes the 1/3/5/9-byte compact-size integer.
func (w *Writer) WriteVarInt(n uint64) {
	switch {
	case n < varIntPrefix16:
		w.buf.WriteByte(byte(n))
	case n <= 0xffff:
		w.buf.WriteByte(varIntPrefix16)
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(n))
		w.buf.Write(b[:])
	case n <= 0xffffffff:
		w.buf.WriteByte(varIntPrefix32)
		w.WriteUint32LE(uint32(n))
	default:
		w.buf.WriteByte(varIntPrefix64)
		w.WriteUint64LE(n)
	}
}

// WriteVarBytes writes a var_int length prefix followed by b.
func (w *Writer) WriteVarBytes(b []byte) {
	w.WriteVarInt(uint64(len(b)))
	w.buf.Write(b)
}

// WriteHash160 writes a 20-byte little-endian script hash.
func (w *Writer) WriteHash160(h protocol.Hash160) {
	w.buf.Write(h[:])
}

// WriteHash256 writes a 32-byte little-endian transaction hash.
func (w *Writer) WriteHash256(h protocol.Hash256) {
	w.buf.Write(h[:])
}

// WritePublicKey writes a 33-byte compressed secp256r1 point.
func (w *Writer) WritePublicKey(pk protocol.PublicKey) {
	w.buf.Write(pk[:])
}

package codec

import (
	"encoding/binary"

	"github.com/nan01ab/neo/protocol"
)

// Reader is a length-prefixed, little-endian binary cursor over a fixed
// byte budget. It never allocates more than the bytes it has already
// confirmed are present, so a peer claiming an absurd length cannot force an
// over-allocation: the claimed length is checked against the remaining
// budget before any make([]byte, ...) call.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps b for bounded reading. The budget is len(b); callers that
// want a stricter cap should slice b themselves before constructing a Reader.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Remaining returns the number of unread bytes left in the budget.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// AtEnd reports whether every byte in the budget has been consumed; callers
// use this to reject trailing bytes in a sub-object.
func (r *Reader) AtEnd() bool {
	return r.Remaining() == 0
}

func (r *Reader) need(n int) error {
	if n < 0 || n > r.Remaining() {
		return NewFormatError("unexpected end of data: need %d bytes, have %d", n, r.Remaining())
	}
	return nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n raw bytes. The returned slice is a copy; the
// caller may mutate it freely.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// ReadUint32LE reads a little-endian uint32.
func (r *Reader) ReadUint32LE() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// ReadUint64LE reads a little-endian uint64.
func (r *Reader) ReadUint64LE() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

// ReadVarInt reads the 1/3/5/9-byte compact-size integer.
func (r *Reader) ReadVarInt() (uint64, error) {
	prefix, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	switch prefix {
	case varIntPrefix16:
		if err := r.need(2); err != nil {
			return 0, err
		}
		v := uint64(binary.LittleEndian.Uint16(r.buf[r.pos : r.pos+2]))
		r.pos += 2
		return v, nil
	case varIntPrefix32:
		v, err := r.ReadUint32LE()
		return uint64(v), err
	case varIntPrefix64:
		return r.ReadUint64LE()
	default:
		return uint64(prefix), nil
	}
}

// ReadVarBytes reads a var_int length prefix followed by that many bytes.
// maxLen bounds the claimed length before any allocation happens: an
// adversarial peer claiming a multi-gigabyte string fails here, not after
// make() has already run.
func (r *Reader) ReadVarBytes(maxLen int) ([]byte, error) {
	n, err := r.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if n > uint64(maxLen) {
		return nil, NewFormatError("byte string too long: %d > max %d", n, maxLen)
	}
	return r.ReadBytes(int(n))
}

// ReadArrayLen reads a var_int length prefix and enforces maxCount before
// the caller allocates the backing slice for the elements: array reads
// enforce a caller-supplied element cap before allocating.
func (r *Reader) ReadArrayLen(maxCount int) (int, error) {
	n, err := r.ReadVarInt()
	if err != nil {
		return 0, err
	}
	if n > uint64(maxCount) {
		return 0, NewFormatError("array too long: %d > max %d", n, maxCount)
	}
	return int(n), nil
}

// ReadHash160 reads a 20-byte little-endian script hash.
func (r *Reader) ReadHash160() (protocol.Hash160, error) {
	var h protocol.Hash160
	b, err := r.ReadBytes(len(h))
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

// ReadHash256 reads a 32-byte little-endian transaction hash.
func (r *Reader) ReadHash256() (protocol.Hash256, error) {
	var h protocol.Hash256
	b, err := r.ReadBytes(len(h))
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

// ReadPublicKey reads a 33-byte compressed secp256r1 point.
func (r *Reader) ReadPublicKey() (protocol.PublicKey, error) {
	var pk protocol.PublicKey
	b, err := r.ReadBytes(len(pk))
	if err != nil {
		return pk, err
	}
	copy(pk[:], b)
	return pk, nil
}

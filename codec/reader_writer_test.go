package codec

import (
	"bytes"
	"testing"

	"github.com/nan01ab/neo/protocol"
)

func TestVarIntRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 0xfc, 0xfd, 0xffff, 0x10000, 0xffffffff, 0x100000000, 1 << 63}
	for _, n := range cases {
		w := NewWriter()
		w.WriteVarInt(n)
		if got := len(w.Bytes()); got != varIntLen(n) {
			t.Errorf("varIntLen(%d): writer wrote %d bytes, varIntLen said %d", n, got, varIntLen(n))
		}

		r := NewReader(w.Bytes())
		got, err := r.ReadVarInt()
		if err != nil {
			t.Fatalf("ReadVarInt(%d): %v", n, err)
		}
		if got != n {
			t.Errorf("ReadVarInt: want %d, got %d", n, got)
		}
		if !r.AtEnd() {
			t.Errorf("ReadVarInt(%d): reader not at end, %d bytes remaining", n, r.Remaining())
		}
	}
}

func TestReadVarBytesRejectsOversizeBeforeAllocating(t *testing.T) {
	w := NewWriter()
	w.WriteVarInt(1 << 30) // claims a huge length but supplies no data
	r := NewReader(w.Bytes())

	_, err := r.ReadVarBytes(1024)
	if !IsFormatError(err) {
		t.Fatalf("expected a format error for an oversize claimed length, got %v", err)
	}
}

func TestReadArrayLenRejectsOversize(t *testing.T) {
	w := NewWriter()
	w.WriteVarInt(100)
	r := NewReader(w.Bytes())

	if _, err := r.ReadArrayLen(10); !IsFormatError(err) {
		t.Fatalf("expected a format error for an oversize array length, got %v", err)
	}
}

func TestReadTruncatedInput(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if _, err := r.ReadBytes(3); !IsFormatError(err) {
		t.Fatalf("expected a format error reading past the end of the buffer, got %v", err)
	}
}

func TestHashAndPublicKeyRoundTrip(t *testing.T) {
	var h160 protocol.Hash160
	for i := range h160 {
		h160[i] = byte(i)
	}
	var h256 protocol.Hash256
	for i := range h256 {
		h256[i] = byte(i * 3)
	}
	var pk protocol.PublicKey
	pk[0] = 0x02
	for i := 1; i < len(pk); i++ {
		pk[i] = byte(i)
	}

	w := NewWriter()
	w.WriteHash160(h160)
	w.WriteHash256(h256)
	w.WritePublicKey(pk)

	r := NewReader(w.Bytes())
	gotH160, err := r.ReadHash160()
	if err != nil || gotH160 != h160 {
		t.Fatalf("Hash160 round trip: got %v, err %v", gotH160, err)
	}
	gotH256, err := r.ReadHash256()
	if err != nil || gotH256 != h256 {
		t.Fatalf("Hash256 round trip: got %v, err %v", gotH256, err)
	}
	gotPK, err := r.ReadPublicKey()
	if err != nil || gotPK != pk {
		t.Fatalf("PublicKey round trip: got %v, err %v", gotPK, err)
	}
	if !r.AtEnd() {
		t.Fatal("reader not at end after reading exactly what was written")
	}
}

func TestVarBytesRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0xab}, 300)

	w := NewWriter()
	w.WriteVarBytes(payload)

	r := NewReader(w.Bytes())
	got, err := r.ReadVarBytes(1024)
	if err != nil {
		t.Fatalf("ReadVarBytes: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("var bytes round trip mismatch")
	}
}

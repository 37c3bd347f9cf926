// Package protocol holds the wire-level identity types and enum tables shared
// by the codec, witness, and txattr packages.
package protocol

import (
	"encoding/hex"
	"fmt"
)

// Hash160 is the 20-byte output of the script-hash function, little-endian on
// the wire and big-endian when rendered as a 0x-prefixed string.
type Hash160 [20]byte

// Hash256 is the 32-byte transaction-hash identity.
type Hash256 [32]byte

// PublicKey is a compressed secp256r1 point: 0x02/0x03 prefix followed by the
// 32-byte X coordinate.
type PublicKey [33]byte

func (h Hash160) String() string {
	return "0x" + hex.EncodeToString(reversed(h[:]))
}

func (h Hash256) String() string {
	return "0x" + hex.EncodeToString(reversed(h[:]))
}

func (p PublicKey) String() string {
	return hex.EncodeToString(p[:])
}

// IsZero reports whether h is the all-zero hash.
func (h Hash160) IsZero() bool {
	return h == Hash160{}
}

func (h Hash256) IsZero() bool {
	return h == Hash256{}
}

// reversed returns a big-endian copy of a little-endian wire byte slice,
// matching the convention that hashes are stored little-endian but printed
// big-endian.
func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// Hash160FromHex parses a big-endian 0x-prefixed (or bare) hex string into a
// Hash160, reversing it back to little-endian wire order.
func Hash160FromHex(s string) (Hash160, error) {
	var h Hash160
	b, err := decodeFixedHex(s, len(h))
	if err != nil {
		return h, err
	}
	copy(h[:], reversed(b))
	return h, nil
}

// Hash256FromHex parses a big-endian 0x-prefixed (or bare) hex string into a
// Hash256.
func Hash256FromHex(s string) (Hash256, error) {
	var h Hash256
	b, err := decodeFixedHex(s, len(h))
	if err != nil {
		return h, err
	}
	copy(h[:], reversed(b))
	return h, nil
}

// PublicKeyFromHex parses a compressed-hex public key (no 0x prefix).
func PublicKeyFromHex(s string) (PublicKey, error) {
	var pk PublicKey
	b, err := decodeFixedHex(s, len(pk))
	if err != nil {
		return pk, err
	}
	copy(pk[:], b)
	return pk, nil
}

func decodeFixedHex(s string, want int) ([]byte, error) {
	if len(s) >= 2 && s[0:2] == "0x" {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	if len(b) != want {
		return nil, fmt.Errorf("invalid length: want %d bytes, got %d", want, len(b))
	}
	return b, nil
}

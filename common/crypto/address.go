package crypto

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/nan01ab/neo/protocol"
)

// AddressVersion is the single version byte prefixed to a script hash
// before base58check encoding, matching this domain's convention of a
// network-specific address version.
const AddressVersion = 0x35

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// AddressFromScriptHash renders h as a base58check address string: the
// human-facing form of the script-hash identity. No third-party base58
// library is available, so this is the one identity-value helper built on
// the standard library alone (see DESIGN.md).
func AddressFromScriptHash(h protocol.Hash160) string {
	payload := make([]byte, 0, 1+len(h))
	payload = append(payload, AddressVersion)
	payload = append(payload, h[:]...)

	checksum := doubleSHA256(payload)
	full := append(payload, checksum[:4]...)

	return base58Encode(full)
}

// AddressToScriptHash parses a base58check address back into its Hash160,
// verifying the version byte and checksum.
func AddressToScriptHash(addr string) (protocol.Hash160, error) {
	var h protocol.Hash160

	full, err := base58Decode(addr)
	if err != nil {
		return h, err
	}
	if len(full) != 1+len(h)+4 {
		return h, fmt.Errorf("invalid address length: %d", len(full))
	}

	payload := full[:1+len(h)]
	checksum := full[1+len(h):]
	want := doubleSHA256(payload)
	for i := range checksum {
		if checksum[i] != want[i] {
			return h, fmt.Errorf("invalid address checksum")
		}
	}
	if payload[0] != AddressVersion {
		return h, fmt.Errorf("unexpected address version: 0x%02x", payload[0])
	}

	copy(h[:], payload[1:])
	return h, nil
}

func doubleSHA256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

func base58Encode(b []byte) string {
	zero := byte(base58Alphabet[0])

	num := new(big.Int).SetBytes(b)
	base := big.NewInt(58)
	mod := new(big.Int)

	var out []byte
	for num.Sign() > 0 {
		num.DivMod(num, base, mod)
		out = append(out, base58Alphabet[mod.Int64()])
	}

	for _, v := range b {
		if v != 0 {
			break
		}
		out = append(out, zero)
	}

	reverse(out)
	return string(out)
}

func base58Decode(s string) ([]byte, error) {
	num := new(big.Int)
	base := big.NewInt(58)

	for _, r := range s {
		idx := indexOf(base58Alphabet, byte(r))
		if idx < 0 {
			return nil, fmt.Errorf("invalid base58 character %q", r)
		}
		num.Mul(num, base)
		num.Add(num, big.NewInt(int64(idx)))
	}

	decoded := num.Bytes()

	leadingZeros := 0
	for _, r := range s {
		if byte(r) != base58Alphabet[0] {
			break
		}
		leadingZeros++
	}

	out := make([]byte, leadingZeros+len(decoded))
	copy(out[leadingZeros:], decoded)
	return out, nil
}

func indexOf(alphabet string, b byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == b {
			return i
		}
	}
	return -1
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

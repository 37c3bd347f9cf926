package utils

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nan01ab/neo/protocol"
)

// HashToString renders a Hash256 as 0x-prefixed big-endian hex, the same
// convention protocol.Hash256.String uses.
func HashToString(hash protocol.Hash256) string {
	return hash.String()
}

// StringToHash parses the inverse of HashToString.
func StringToHash(str string) (protocol.Hash256, error) {
	return protocol.Hash256FromHex(str)
}

// AddressToString renders a Hash160 as 0x-prefixed big-endian hex.
func AddressToString(address protocol.Hash160) string {
	return address.String()
}

// StringToAddress parses the inverse of AddressToString.
func StringToAddress(str string) (protocol.Hash160, error) {
	return protocol.Hash160FromHex(str)
}

// SignatureToString renders a variable-length ASN.1 DER signature as hex
// with no 0x prefix, matching the plain-hex convention used for opaque
// byte blobs outside the canonical identity types.
func SignatureToString(sig []byte) string {
	return hex.EncodeToString(sig)
}

// StringToSignature parses the inverse of SignatureToString.
func StringToSignature(str string) ([]byte, error) {
	if len(str) >= 2 && str[0:2] == "0x" {
		str = str[2:]
	}
	sig, err := hex.DecodeString(str)
	if err != nil {
		return nil, fmt.Errorf("invalid signature string: %w", err)
	}
	return sig, nil
}

// Serialization formats supported by SerializeData/DeserializeData.
const (
	SerializationFormatGob = iota
	SerializationFormatJSON
)

// SerializeData encodes data using the given format, for the handful of
// call sites (cache entries, CLI output) that need a format switch rather
// than a fixed encoding.
func SerializeData(data interface{}, format int) ([]byte, error) {
	switch format {
	case SerializationFormatGob:
		return gobEncode(data)
	case SerializationFormatJSON:
		return json.Marshal(data)
	default:
		return nil, fmt.Errorf("unsupported serialization format: %d", format)
	}
}

// DeserializeData is the inverse of SerializeData.
func DeserializeData(data []byte, result interface{}, format int) error {
	switch format {
	case SerializationFormatGob:
		return gobDecode(data, result)
	case SerializationFormatJSON:
		return json.Unmarshal(data, result)
	default:
		return fmt.Errorf("unsupported serialization format: %d", format)
	}
}

func gobEncode(data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("gob encode: %w", err)
	}
	return buf.Bytes(), nil
}

func gobDecode(data []byte, result interface{}) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(result); err != nil {
		return fmt.Errorf("gob decode: %w", err)
	}
	return nil
}

// Uint64ToString renders a uint64 in base 10.
func Uint64ToString(value uint64) string {
	return strconv.FormatUint(value, 10)
}

// StringToUint64 parses the inverse of Uint64ToString.
func StringToUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// Uint64ToBytes renders a uint64 as big-endian bytes, for use as a
// lexicographically ordered storage key suffix.
func Uint64ToBytes(value uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, value)
	return buf
}

// BytesToUint64 is the inverse of Uint64ToBytes.
func BytesToUint64(data []byte) uint64 {
	return binary.BigEndian.Uint64(data)
}

package codec

import "encoding/base64"

// Base64Bytes renders raw bytes (invocation/verification scripts) the
// canonical way JSON encodes them.
func Base64Bytes(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64Bytes is the inverse of Base64Bytes.
func DecodeBase64Bytes(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, NewFormatError("invalid base64: %v", err)
	}
	return b, nil
}

package utils

import (
	"crypto/sha256"
	"fmt"
)

// Hash JSON-serializes i and returns the SHA-256 digest of the result, used
// for content-addressed cache keys where a stable, encoding-independent
// digest matters more than speed. JSON is used rather than gob because gob
// output is not stable across processes in the way a cache key needs.
func Hash(i interface{}) [32]byte {
	data, err := SerializeData(i, SerializationFormatJSON)
	if err != nil {
		s := fmt.Sprintf("%v", i)
		return sha256.Sum256([]byte(s))
	}
	return sha256.Sum256(data)
}

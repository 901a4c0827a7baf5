package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex digest of data.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ETag returns a strong HTTP entity tag for a response body.
func ETag(body []byte) string {
	return `"` + SHA256Hex(body)[:16] + `"`
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// KeyFor derives the cache key of an endpoint. Surrounding whitespace is
// ignored.
func KeyFor(endpoint string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(endpoint)))
	return hex.EncodeToString(sum[:])
}

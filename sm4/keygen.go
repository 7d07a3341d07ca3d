package sm4

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateKey returns a fresh 32-hex-character (16-byte) key, using a
// random UUID's hex digits for convenience the way a disposable
// session identifier is minted elsewhere in the ecosystem.
func GenerateKey() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// GenerateIV returns a fresh 32-hex-character (16-byte) initialization
// vector, using the same UUID-derived convenience encoding as GenerateKey.
func GenerateIV() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

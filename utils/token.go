// utils/token.go
package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateSecureToken returns n random bytes hex-encoded. These tokens are
// the public identifiers for every entity; storage keys never leave the
// database layer.
func GenerateSecureToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate secure token")
	}
	return hex.EncodeToString(b)
}

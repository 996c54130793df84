package wellness

import (
	"crypto/sha256"
	"encoding/hex"
)

// passwordPrefix is prepended before hashing; the server stores and
// compares digests of the prefixed password.
const passwordPrefix = "hzs"

// HashPassword produces the digest the login endpoint expects:
// hex-encoded SHA-256 of the prefixed password. The plaintext never
// leaves the client.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(passwordPrefix + password))
	return hex.EncodeToString(sum[:])
}

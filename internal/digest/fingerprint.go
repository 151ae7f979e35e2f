// Package digest computes short content fingerprints used as HTTP ETags.
package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:10])
}

// ETag quotes the fingerprint of b as a strong entity tag.
func ETag(b []byte) string {
	return `"` + Fingerprint(b) + `"`
}

package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"tinyrsa/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a key record.
//
// It hashes the encoded record with BLAKE2b-256 and truncates to 10 bytes
// (20 hex chars).
func Fingerprint(key domain.Key) domain.Fingerprint {
	sum := blake2b.Sum256(MarshalKey(key))
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}

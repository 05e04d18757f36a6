package keyfile

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"sturgeon/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a key setting.
//
// It hashes the canonical saved form with BLAKE2b-256 and truncates to 10
// bytes (20 hex chars), enough for operators to compare key sheets without
// reading pin patterns aloud.
func Fingerprint(key domain.KeySetting) (domain.Fingerprint, error) {
	data, err := Save(key)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)
	return domain.Fingerprint(hex.EncodeToString(sum[:10])), nil
}

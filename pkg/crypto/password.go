package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// PasswordHandler turns plaintext secrets into verifiable digests.
type PasswordHandler interface {
	Hash(password string) (string, error)
	Verify(password, digest string) (bool, error)
}

// Ensure SHA256 implements PasswordHandler
var _ PasswordHandler = (*SHA256)(nil)

// SHA256 is the deterministic digest the original data set was written
// with: SHA-256 of the plaintext rendered as 64 lowercase hex characters,
// no salt. Identical passwords therefore produce identical digests across
// accounts, a known weakness. Use Argon2 where compatibility with existing
// digests is not required.
type SHA256 struct{}

func NewSHA256() *SHA256 {
	return &SHA256{}
}

func (s *SHA256) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (s *SHA256) Verify(password, digest string) (bool, error) {
	computed, err := s.Hash(password)
	if err != nil {
		return false, err
	}

	// Constant-time comparison to prevent timing attacks
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1, nil
}

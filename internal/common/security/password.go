package security

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns plaintext passwords into storable hashes and checks them.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given bcrypt cost. Out-of-range costs fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash salts internally, so hashing the same plaintext twice yields different strings.
// It fails for passwords longer than 72 bytes.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify never errors: a malformed hash is simply a mismatch.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

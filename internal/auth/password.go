package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBCryptCost is the work factor used when the configured cost is out of
// bcrypt's accepted range.
const DefaultBCryptCost = 12

// HashPassword derives an irreversible secret from a plaintext password.
// bcrypt embeds a fresh random salt on every call, so hashing the same
// password twice yields two different secrets.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBCryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored secret. The
// comparison is constant-time; a malformed secret yields false, never an
// error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Package password provides one-way password hashing for stored credentials.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for new hashes. Existing hashes verify at
// whatever cost they were created with.
const BcryptCost = 12

// Hash returns a bcrypt hash of the given password.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash. A malformed or
// empty hash is treated the same as a mismatch; callers cannot distinguish
// the two, which keeps login failures uniform.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

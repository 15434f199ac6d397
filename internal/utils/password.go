package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash for storage. The default cost is used
// everywhere a credential is written, including the seeded admin account, so
// stored hashes stay comparable across backends.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext matches the stored hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

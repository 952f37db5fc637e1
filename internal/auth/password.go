package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Constants for cost and max password length (bcrypt truncates after 72 bytes)
const (
	bcryptCost     = 10
	maxPasswordLen = 72
)

// HashPassword hashes a password using bcrypt. The digest embeds the cost and
// a fresh random salt, so it is self-contained for later verification.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordLen {
		return "", errors.New("password exceeds 72 bytes and would be truncated by bcrypt")
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// VerifyPassword compares a plaintext password with a stored bcrypt digest.
// Returns false for any mismatch, including a malformed digest.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

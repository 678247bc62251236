package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// credentialCost is the bcrypt work factor for stored credentials.
const credentialCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext credential for storage. Accounts on the
// default-password scheme have no stored hash at all and never pass through
// here.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), credentialCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext credential with a stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateTempPassword returns a hex-encoded random credential for the
// recovery flow. lengthInBytes=8 yields a 16-character password.
func GenerateTempPassword(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashAPIKey hashes a plaintext API key using bcrypt.
func HashAPIKey(apiKey string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckAPIKey compares a plaintext API key with a bcrypt hash.
func CheckAPIKey(apiKey, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey)) == nil
}

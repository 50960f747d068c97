package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminTokenClaims mirrors the claims the auth middleware expects.
type AdminTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a new admin JWT with the given parameters.
func GenerateJWT(adminUID string, email string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := AdminTokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   adminUID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

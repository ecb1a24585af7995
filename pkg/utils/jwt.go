package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the admin session identity. There is a single
// admin principal, so the subject is fixed.
type SessionClaims struct {
	jwt.RegisteredClaims
}

const adminSubject = "admin"

// CreateSessionToken mints a short-lived HS256 token for the admin session.
func CreateSessionToken(secret string, ttl time.Duration) (string, error) {
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateSessionToken(secret string, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	if claims.Subject != adminSubject {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

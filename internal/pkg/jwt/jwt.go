package jwt

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of an admin credential. There is no revocation
// list; a token stays valid until it expires.
const TokenTTL = 7 * 24 * time.Hour

var secret []byte

// SetSecret configures the JWT signing secret (call on startup).
func SetSecret(s string) {
	secret = []byte(s)
}

// Claims is the admin credential payload. The system has exactly one admin
// identity, so the only assertion carried is "bearer is admin".
type Claims struct {
	Admin bool `json:"admin"`
	jwtlib.RegisteredClaims
}

// Sign creates a signed admin token expiring TokenTTL from now.
func Sign() (string, error) {
	now := time.Now()
	claims := Claims{
		Admin: true,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Parse validates a token string and returns the claims.
func Parse(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Verify reports whether tokenStr is a currently valid admin credential.
// It never returns an error: malformed tokens, bad signatures and expired
// tokens all collapse to false.
func Verify(tokenStr string) bool {
	claims, err := Parse(tokenStr)
	if err != nil {
		return false
	}
	return claims.Admin
}

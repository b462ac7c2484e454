package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

func TestSignVerifyRoundtrip(t *testing.T) {
	SetSecret("test-secret")

	token, err := Sign()
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if token == "" {
		t.Fatal("Sign returned empty token")
	}

	if !Verify(token) {
		t.Error("freshly issued token should verify")
	}
	// Repeated verification must keep succeeding within the TTL.
	if !Verify(token) {
		t.Error("second verification should also succeed")
	}

	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !claims.Admin {
		t.Error("claims should carry admin=true")
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != TokenTTL {
		t.Errorf("token TTL = %v, want %v", ttl, TokenTTL)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	SetSecret("test-secret")

	for _, tok := range []string{"", "garbage", "a.b.c", "Bearer whatever"} {
		if Verify(tok) {
			t.Errorf("Verify(%q) = true, want false", tok)
		}
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	SetSecret("secret-one")
	token, err := Sign()
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	SetSecret("secret-two")
	if Verify(token) {
		t.Error("token signed with a different secret should not verify")
	}

	SetSecret("secret-one")
	if !Verify(token) {
		t.Error("token should verify again with the original secret")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	SetSecret("test-secret")

	claims := Claims{
		Admin: true,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if Verify(token) {
		t.Error("expired token should not verify")
	}
}

func TestVerifyRequiresAdminClaim(t *testing.T) {
	SetSecret("test-secret")

	claims := Claims{
		Admin: false,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if Verify(token) {
		t.Error("well-signed token without admin=true should not verify")
	}
}

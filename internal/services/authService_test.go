package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTRoundTrip(t *testing.T) {
	auth := NewAuthService("secret", 4*time.Hour)

	token, err := auth.GenerateJWT(Identity{Email: "a@x.com", Name: "Ann"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := auth.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != "a@x.com" || claims.Name != "Ann" {
		t.Errorf("unexpected claims %+v", claims.Identity)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 4*time.Hour {
		t.Errorf("expected 4h lifetime, got %v", got)
	}
}

func TestJWTRequiresEmail(t *testing.T) {
	auth := NewAuthService("secret", time.Hour)
	if _, err := auth.GenerateJWT(Identity{Name: "nobody"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestJWTExpired(t *testing.T) {
	auth := NewAuthService("secret", 4*time.Hour)
	issued := time.Now()
	auth.now = func() time.Time { return issued }

	token, err := auth.GenerateJWT(Identity{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	auth.now = func() time.Time { return issued.Add(3 * time.Hour) }
	if _, err := auth.ParseJWT(token); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	auth.now = func() time.Time { return issued.Add(5 * time.Hour) }
	if _, err := auth.ParseJWT(token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for expired token, got %v", err)
	}
}

func TestJWTRejectsForeignTokens(t *testing.T) {
	auth := NewAuthService("secret", time.Hour)
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	otherSecret, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Identity:         Identity{Email: "a@x.com"},
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte("other"))

	otherAlg, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		Identity:         Identity{Email: "a@x.com"},
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte("secret"))

	noEmail, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte("secret"))

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Identity: Identity{Email: "a@x.com"},
	}).SignedString([]byte("secret"))

	tokens := map[string]string{
		"other secret": otherSecret,
		"other alg":    otherAlg,
		"no email":     noEmail,
		"no expiry":    noExpiry,
		"garbage":      "not.a.token",
		"empty":        "",
	}
	for name, token := range tokens {
		if _, err := auth.ParseJWT(token); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("%s: expected unauthenticated, got %v", name, err)
		}
	}
}

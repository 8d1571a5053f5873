package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the payload a client exchanges for an access token.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type Claims struct {
	Identity
	jwt.RegisteredClaims
}

type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(secret string, ttl time.Duration) *AuthService {
	return &AuthService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateJWT signs an HS256 token for the identity that expires after the
// configured TTL. There is no refresh: an expired token forces a new login.
func (s *AuthService) GenerateJWT(identity Identity) (string, error) {
	identity.Email = strings.TrimSpace(identity.Email)
	if identity.Email == "" {
		return "", Errorf(ErrInvalidInput, "email is required")
	}

	now := s.now()
	claims := Claims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseJWT verifies signature and expiry and returns the claims. Any failure
// is ErrUnauthenticated.
func (s *AuthService) ParseJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if !token.Valid {
		return nil, ErrUnauthenticated
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("%w: token has no email claim", ErrUnauthenticated)
	}
	return claims, nil
}

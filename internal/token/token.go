// Package token issues and verifies the signed bearer tokens handed out at
// login. Tokens are HMAC-SHA256 signed JWTs carrying the account identity.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/barangay-is/barangay-is/internal/db/models"
)

var (
	// ErrInvalidToken is returned when a token fails signature or claim
	// validation, including expiry.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrEmptySecret is returned when a Signer is constructed without a secret.
	ErrEmptySecret = errors.New("token secret is empty")
)

// Claims is the identity payload embedded in issued tokens.
type Claims struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Signer issues and parses tokens with a shared HMAC secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner creates a Signer. An empty secret is rejected, a zero ttl is
// accepted and produces tokens that are already expired.
func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	return &Signer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given account.
func (s *Signer) Issue(u *models.User) (string, error) {
	now := time.Now()

	claims := Claims{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse validates a token string and returns its claims. Any failure,
// including an expired or foreign-signed token, maps to ErrInvalidToken.
func (s *Signer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

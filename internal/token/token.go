package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/scrawlhq/scrawl/internal/auth"
)

var (
	// ErrMissing means no credential was presented at all.
	ErrMissing = errors.New("token missing")
	// ErrInvalid covers malformed, badly signed, and expired tokens.
	ErrInvalid = errors.New("token invalid")
)

type claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Verifier signs and verifies bearer tokens with a process-wide shared secret.
// The secret is injected once at construction and never consulted elsewhere.
type Verifier struct {
	secret []byte
	ttl    time.Duration
}

func NewVerifier(secret string, ttl time.Duration) *Verifier {
	return &Verifier{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token asserting the given user ID, expiring after
// the verifier's configured TTL.
func (v *Verifier) Issue(userID int64) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
	})
	signed, err := t.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of raw and extracts the caller
// identity. It touches nothing but the token, the secret, and the clock.
func (v *Verifier) Verify(raw string) (auth.Identity, error) {
	if raw == "" {
		return auth.Identity{}, ErrMissing
	}

	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return auth.Identity{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.UserID == 0 {
		return auth.Identity{}, fmt.Errorf("%w: no user id claim", ErrInvalid)
	}

	return auth.Identity{UserID: c.UserID}, nil
}

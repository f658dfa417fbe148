// Package auth issues and verifies the HS256 bearer tokens that identify
// callers. Tokens carry the user id in "sub" and the role wire name in "role".
package auth

import (
	"errors"
	"fmt"
	"time"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("jwt secret must not be empty")
)

// Caller is the identity extracted from a verified token.
type Caller struct {
	ID   kernel.UUID
	Role user.Role
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for the given user. A zero ttl issues a token without expiry.
func (s *TokenService) Issue(u *user.User) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	c := claims{
		Role: u.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  u.ID().String(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the caller. Every failure
// wraps ErrInvalidToken.
func (s *TokenService) Verify(raw string) (Caller, error) {
	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return Caller{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return Caller{}, fmt.Errorf("%w: sub: %v", ErrInvalidToken, err)
	}

	role, err := user.ParseRole(c.Role)
	if err != nil {
		return Caller{}, fmt.Errorf("%w: role: %v", ErrInvalidToken, err)
	}

	return Caller{ID: id, Role: role}, nil
}

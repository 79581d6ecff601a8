// Package token signs and verifies the bearer tokens used by the API.
// Tokens are HS256 JWTs carrying the subject id and admin flag; expiry is
// the only termination mechanism, there is no server-side revocation.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = 8 * time.Hour

var (
	// ErrNoSecret is returned by NewManager when the signing secret is
	// empty. The secret must be configured explicitly; there is no default.
	ErrNoSecret = errors.New("signing secret must be configured")
	// ErrExpired marks a token whose expiry has passed.
	ErrExpired = errors.New("token expired")
	// ErrInvalid marks a token whose signature does not verify.
	ErrInvalid = errors.New("invalid token signature")
	// ErrMalformed marks a verified token missing required claims.
	ErrMalformed = errors.New("token claims are malformed")
)

// Claims is the identity a token carries.
type Claims struct {
	UserID  string
	IsAdmin bool
}

// Manager issues and verifies tokens with a process-wide secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs the claims into a token expiring ttl from now.
func (m *Manager) Issue(c Claims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       c.UserID,
		"is_admin": c.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(m.ttl).Unix(),
	})
	return t.SignedString(m.secret)
}

// Verify parses and validates a token. It distinguishes expiry from a bad
// signature, and reports ErrMalformed when a structurally valid token does
// not carry the required identity claims.
func (m *Manager) Verify(raw string) (Claims, error) {
	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalid
	}
	if !tkn.Valid {
		return Claims{}, ErrInvalid
	}

	id, ok := mc["id"].(string)
	if !ok || id == "" {
		return Claims{}, ErrMalformed
	}
	isAdmin, ok := mc["is_admin"].(bool)
	if !ok {
		return Claims{}, ErrMalformed
	}

	return Claims{UserID: id, IsAdmin: isAdmin}, nil
}

// Package auth issues and verifies access tokens and hashes secrets
// (passwords and one-time codes) for the admin console.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

const issuer = "travel-agency-api"

// Claims is the JWT payload: the standard claims plus the caller's role.
// Subject holds the user id in decimal.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the caller resolved from a valid token.
type Identity struct {
	UserID int64
	Role   string
}

// IsAdmin reports whether the caller may use admin endpoints.
func (i Identity) IsAdmin() bool {
	return domain.IsAdminRole(i.Role)
}

// Tokens signs and verifies HS256 access tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens returns a Tokens using secret for signing. Tokens expire after ttl.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for the user.
func (t *Tokens) Issue(userID int64, role string) (string, error) {
	now := t.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("auth.Tokens.Issue: %w", err)
	}
	return signed, nil
}

// Parse verifies a token and returns the identity it carries. Every failure
// wraps domain.ErrUnauthorized.
func (t *Tokens) Parse(token string) (Identity, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Identity{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, errors.New("invalid subject"))
	}
	return Identity{UserID: id, Role: claims.Role}, nil
}

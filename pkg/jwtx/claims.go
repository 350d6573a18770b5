package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/morjahome/dashboard/pkg/idx"
)

// DefaultSessionTTL is how long a login session token stays valid.
const DefaultSessionTTL = 24 * time.Hour

// Claims are the session-token claims. Subject carries the account id.
type Claims struct {
	jwt.RegisteredClaims

	// Username at the time of issue, informational only
	Username string `json:"username,omitempty"`

	// Roles at the time of issue. Authorization always re-reads the account,
	// so a role change takes effect before the token expires.
	Roles []string `json:"roles,omitempty"`
}

// NewSessionClaims builds claims valid from now until now+ttl.
func NewSessionClaims(subject, username string, roles []string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Username: username,
		Roles:    roles,
	}
}

// NewJTI returns a sortable unique identifier for the "jti" claim.
func NewJTI() string {
	return idx.New().String()
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiryAt ensures the token hasn't expired (exp) and isn't used
// before nbf, as seen at now.
func (c *Claims) ValidateExpiryAt(now time.Time) error {
	if c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}

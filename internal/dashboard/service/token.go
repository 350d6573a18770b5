package service

import (
	"fmt"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/pkg/jwtx"
)

// TokenService issues and verifies session bearer tokens.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration
	Clock    Clock
}

// NewTokenService builds an HS256 token service. The verifier shares the
// service clock, so tests can move time for both sides at once.
func NewTokenService(secret []byte, issuer string, ttl time.Duration) (*TokenService, error) {
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}
	verifier, err := jwtx.NewVerifierHS256(secret, issuer)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	s := &TokenService{Signer: signer, Issuer: issuer, TTL: ttl}
	verifier.Now = func() time.Time { return s.Clock.now() }
	s.Verifier = verifier
	return s, nil
}

// Issue signs a session token for a and returns it with its expiry.
func (s *TokenService) Issue(a domain.Account) (string, time.Time, error) {
	claims := jwtx.NewSessionClaims(a.ID, a.Username, a.Roles, s.TTL, s.Issuer, s.Clock.now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

// Verify checks signature and validity window. Every failure is reported as
// ErrUnauthorized; the cause stays in the chain for logs only.
func (s *TokenService) Verify(token string) (jwtx.Claims, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return claims, nil
}

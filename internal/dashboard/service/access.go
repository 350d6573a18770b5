package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/store"
)

// AccessService turns a bearer token into a live account and applies the
// role predicate. Tokens are never revoked individually; deleting or
// deactivating the account is what cuts a session short.
type AccessService struct {
	Store  store.Store
	Tokens *TokenService
}

// Authenticate verifies token and loads its account. Bad tokens and missing
// or inactive accounts all yield ErrUnauthorized.
func (s *AccessService) Authenticate(ctx context.Context, token string) (domain.Account, error) {
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return domain.Account{}, err
	}

	a, err := s.Store.Accounts().GetAccountByID(ctx, claims.Subject)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Account{}, fmt.Errorf("%w: account %s no longer exists", ErrUnauthorized, claims.Subject)
	case err != nil:
		return domain.Account{}, fmt.Errorf("load account: %w", err)
	case !a.IsActive:
		return domain.Account{}, fmt.Errorf("%w: account %s is inactive", ErrUnauthorized, a.ID)
	}
	return a, nil
}

// Authorize fails with ErrForbidden unless a holds one of roles or is admin.
func (s *AccessService) Authorize(a domain.Account, roles ...string) error {
	if !domain.HasAnyRole(a, roles...) {
		return ErrForbidden
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/store"
	"github.com/morjahome/dashboard/pkg/cryptox"
	"github.com/morjahome/dashboard/pkg/slogx"
)

// AccountService is the administrative view of accounts. Callers are
// expected to have passed the admin role check already.
type AccountService struct {
	Store store.Store
	Clock Clock
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.Store.Accounts().ListAccounts(ctx)
}

func (s *AccountService) Get(ctx context.Context, id string) (domain.Account, error) {
	a, err := s.Store.Accounts().GetAccountByID(ctx, id)
	return a, mapStoreErr(err)
}

// Create registers an account on behalf of an admin. IsActive defaults to true.
func (s *AccountService) Create(ctx context.Context, in RegisterInput) (domain.Account, error) {
	auth := AuthService{Store: s.Store, Clock: s.Clock}
	return auth.Register(ctx, in)
}

// Update applies p to the account. A new password is hashed before the
// write transaction starts.
func (s *AccountService) Update(ctx context.Context, id string, p domain.AccountPatch) (domain.Account, error) {
	var v domain.Validator
	if p.Username != nil {
		v.Username(*p.Username)
	}
	if p.Email != nil {
		v.Email(*p.Email)
	}
	if p.Password != nil {
		v.Password(*p.Password)
	}
	if p.Roles != nil {
		v.Roles(*p.Roles)
	}
	if err := v.Err(); err != nil {
		return domain.Account{}, err
	}

	var hash string
	if p.Password != nil {
		var err error
		if hash, err = cryptox.HashPassword(*p.Password); err != nil {
			return domain.Account{}, fmt.Errorf("hash password: %w", err)
		}
	}

	var out domain.Account
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		a, err := tx.Accounts().GetAccountByID(ctx, id)
		if err != nil {
			return mapStoreErr(err)
		}
		if p.Username != nil {
			a.Username = *p.Username
		}
		if p.Email != nil {
			a.Email = *p.Email
		}
		if hash != "" {
			a.PasswordHash = hash
		}
		if p.Roles != nil {
			a.Roles = domain.NormalizeRoles(*p.Roles)
		}
		if p.IsActive != nil {
			a.IsActive = *p.IsActive
		}
		a.UpdatedAt = s.Clock.now()

		if err := tx.Accounts().UpdateAccount(ctx, a); err != nil {
			return mapStoreErr(err)
		}
		out = a
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	slogx.FromContext(ctx).Info("account updated", slog.String("account_id", id))
	return out, nil
}

// ResetTwoFactor clears any pending or enabled 2FA without a password. Used
// for operator recovery when a user lost their authenticator.
func (s *AccountService) ResetTwoFactor(ctx context.Context, id string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		a, err := tx.Accounts().GetAccountByID(ctx, id)
		if err != nil {
			return mapStoreErr(err)
		}
		a.TwoFactorSecret = nil
		a.TwoFactorEnabled = false
		a.UpdatedAt = s.Clock.now()
		return mapStoreErr(tx.Accounts().UpdateAccount(ctx, a))
	})
}

// Delete removes the account and its links. An actor can never delete itself.
func (s *AccountService) Delete(ctx context.Context, actor domain.Account, id string) error {
	if id == actor.ID {
		return ErrSelfDeletion
	}
	if err := s.Store.Accounts().DeleteAccount(ctx, id); err != nil {
		return mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("account deleted", slog.String("account_id", id), slog.String("by", actor.ID))
	return nil
}

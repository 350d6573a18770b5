package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/store"
	"github.com/morjahome/dashboard/pkg/cryptox"
	"github.com/morjahome/dashboard/pkg/slogx"
	"github.com/morjahome/dashboard/pkg/totpx"
)

type AuthService struct {
	Store  store.Store
	Tokens *TokenService
	Clock  Clock

	// TOTPWindow is how many 30s steps either side of now a code may come
	// from. Zero means totpx.DefaultWindow.
	TOTPWindow uint
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Roles    []string
	IsActive *bool // nil means active
}

type LoginResult struct {
	Account   domain.Account
	Token     string
	ExpiresAt time.Time
}

// Register validates in, hashes the password and stores a new account.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.Account, error) {
	var v domain.Validator
	v.Username(in.Username)
	v.Email(in.Email)
	v.Password(in.Password)
	v.Roles(in.Roles)
	if err := v.Err(); err != nil {
		return domain.Account{}, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.Clock.now()
	a := domain.Account{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Roles:        domain.NormalizeRoles(in.Roles),
		IsActive:     in.IsActive == nil || *in.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Accounts().CreateAccount(ctx, a); err != nil {
		return domain.Account{}, mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("account registered",
		slog.String("account_id", a.ID),
		slog.Any("roles", a.Roles),
	)
	return a, nil
}

// dummyHash is compared against when the username is unknown so that a miss
// costs the same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	h, _ := cryptox.HashPassword("morjahome-timing-parity")
	return h
})

// Login authenticates username/password and, when enabled, the TOTP code.
// Unknown users and wrong passwords fail with the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password, code string) (LoginResult, error) {
	l := slogx.FromContext(ctx)

	a, err := s.Store.Accounts().GetAccountByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		_, _ = cryptox.VerifyPassword(password, dummyHash())
		l.Warn("login failed", slog.String("reason", "unknown_user"))
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("load account: %w", err)
	}

	if !a.IsActive {
		l.Warn("login failed", slog.String("reason", "inactive"), slog.String("account_id", a.ID))
		return LoginResult{}, ErrAccountDeactivated
	}

	if err := checkPassword(password, a.PasswordHash); err != nil {
		l.Warn("login failed", slog.String("reason", "bad_password"), slog.String("account_id", a.ID))
		return LoginResult{}, err
	}

	if a.TwoFactorEnabled {
		if code == "" {
			return LoginResult{}, ErrTwoFactorRequired
		}
		if !s.verifyCode(a, code) {
			l.Warn("login failed", slog.String("reason", "bad_totp"), slog.String("account_id", a.ID))
			return LoginResult{}, ErrInvalidTwoFactorCode
		}
	}

	// Re-read under the write lock so a concurrent deactivation wins.
	now := s.Clock.now()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		cur, err := tx.Accounts().GetAccountByID(ctx, a.ID)
		if err != nil {
			return err
		}
		if !cur.IsActive {
			return ErrAccountDeactivated
		}
		if err := tx.Accounts().UpdateLastLogin(ctx, a.ID, now); err != nil {
			return err
		}
		cur.LastLogin = &now
		a = cur
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	token, exp, err := s.Tokens.Issue(a)
	if err != nil {
		return LoginResult{}, err
	}

	l.Info("login succeeded", slog.String("account_id", a.ID))
	return LoginResult{Account: a, Token: token, ExpiresAt: exp}, nil
}

// Profile returns the current state of the account.
func (s *AuthService) Profile(ctx context.Context, accountID string) (domain.Account, error) {
	a, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	return a, mapStoreErr(err)
}

func (s *AuthService) verifyCode(a domain.Account, code string) bool {
	if a.TwoFactorSecret == nil {
		return false
	}
	return totpx.Verify(*a.TwoFactorSecret, code, s.Clock.now(), window(s.TOTPWindow))
}

func window(w uint) uint {
	if w == 0 {
		return totpx.DefaultWindow
	}
	return w
}

// checkPassword maps a bcrypt mismatch to ErrInvalidCredentials and a
// malformed stored hash to ErrCorruptCredential.
func checkPassword(password, hash string) error {
	ok, err := cryptox.VerifyPassword(password, hash)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptCredential, err)
	}
	if !ok {
		return ErrInvalidCredentials
	}
	return nil
}

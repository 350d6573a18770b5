package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/store"
	"github.com/morjahome/dashboard/pkg/slogx"
)

var ErrBootstrapConflict = errors.New("default admin username or email is held by a non-admin account")

// BootstrapService guarantees at least one admin exists after startup.
type BootstrapService struct {
	Store store.Store
	Clock Clock

	Username string
	Email    string
	Password string
}

// EnsureAdmin creates the default admin, holding every role, when no account
// carries the admin role. It reports whether an account was created.
func (s *BootstrapService) EnsureAdmin(ctx context.Context) (bool, error) {
	l := slogx.FromContext(ctx)

	n, err := s.Store.Accounts().CountAdmins(ctx)
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		l.Debug("admin account present, skipping bootstrap", slog.Int("admins", n))
		return false, nil
	}

	auth := AuthService{Store: s.Store, Clock: s.Clock}
	a, err := auth.Register(ctx, RegisterInput{
		Username: s.Username,
		Email:    s.Email,
		Password: s.Password,
		Roles:    domain.AllRoles,
	})
	switch {
	case errors.Is(err, ErrDuplicateUsername), errors.Is(err, ErrDuplicateEmail):
		l.Error("default admin bootstrap blocked", slog.String("username", s.Username), slog.Any("error", err))
		return false, fmt.Errorf("%w: %v", ErrBootstrapConflict, err)
	case err != nil:
		return false, fmt.Errorf("create default admin: %w", err)
	}

	l.Warn("created default admin account, change its password",
		slog.String("account_id", a.ID),
		slog.String("username", a.Username),
	)
	return true, nil
}

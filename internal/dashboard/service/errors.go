package service

import (
	"errors"
	"fmt"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/store"
)

var (
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountDeactivated   = errors.New("account is deactivated")
	ErrTwoFactorRequired    = errors.New("two-factor authentication code required")
	ErrInvalidTwoFactorCode = errors.New("invalid two-factor authentication code")
	ErrSetupNotInitiated    = errors.New("two-factor authentication setup not initiated")
	ErrAlreadyEnabled       = errors.New("two-factor authentication is already enabled")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrCorruptCredential    = errors.New("stored credential is corrupt")
	ErrSelfDeletion         = errors.New("cannot delete your own account")

	// ErrInvalidInput matches every *domain.ValidationError.
	ErrInvalidInput = domain.ErrInvalidInput
)

// mapStoreErr translates store sentinels into service errors, keeping the
// original in the chain for logging.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrUsernameTaken):
		return fmt.Errorf("%w: %v", ErrDuplicateUsername, err)
	case errors.Is(err, store.ErrEmailTaken):
		return fmt.Errorf("%w: %v", ErrDuplicateEmail, err)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/store"
	"github.com/morjahome/dashboard/pkg/slogx"
	"github.com/morjahome/dashboard/pkg/totpx"
)

// MFAService drives the per-account 2FA lifecycle:
// none -> pending (Setup2FA) -> enabled (Enable2FA) -> none (Disable2FA).
type MFAService struct {
	Store store.Store
	Clock Clock

	Issuer      string // shown above the account in authenticator apps
	ServiceName string // prefixes the account label, e.g. "MorjaHome (alice)"
	TOTPWindow  uint
}

type TwoFactorSetup struct {
	Secret         string
	ManualEntryKey string
	QRCode         string // data:image/png;base64,...
	URL            string // otpauth:// provisioning URL
}

// Setup2FA stores a fresh pending secret for the account, replacing any
// earlier pending one. 2FA is not enabled until Enable2FA confirms a code.
func (s *MFAService) Setup2FA(ctx context.Context, accountID string) (TwoFactorSetup, error) {
	var enrollment totpx.Enrollment
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		a, err := tx.Accounts().GetAccountByID(ctx, accountID)
		if err != nil {
			return mapStoreErr(err)
		}
		if a.TwoFactorEnabled {
			return ErrAlreadyEnabled
		}

		enrollment, err = totpx.Generate(s.Issuer, s.label(a))
		if err != nil {
			return err
		}

		a.TwoFactorSecret = &enrollment.Secret
		a.TwoFactorEnabled = false
		a.UpdatedAt = s.Clock.now()
		return mapStoreErr(tx.Accounts().UpdateAccount(ctx, a))
	})
	if err != nil {
		return TwoFactorSetup{}, err
	}

	qr, err := enrollment.QRCode()
	if err != nil {
		return TwoFactorSetup{}, fmt.Errorf("render qr code: %w", err)
	}

	slogx.FromContext(ctx).Info("2fa setup initiated", slog.String("account_id", accountID))
	return TwoFactorSetup{
		Secret:         enrollment.Secret,
		ManualEntryKey: enrollment.Secret,
		QRCode:         qr,
		URL:            enrollment.URL,
	}, nil
}

// Enable2FA confirms the pending secret with a code from the authenticator.
func (s *MFAService) Enable2FA(ctx context.Context, accountID, code string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		a, err := tx.Accounts().GetAccountByID(ctx, accountID)
		if err != nil {
			return mapStoreErr(err)
		}

		switch a.TwoFactorState() {
		case domain.TwoFactorNone:
			return ErrSetupNotInitiated
		case domain.TwoFactorEnabled:
			return ErrAlreadyEnabled
		}

		if !totpx.Verify(*a.TwoFactorSecret, code, s.Clock.now(), window(s.TOTPWindow)) {
			return ErrInvalidTwoFactorCode
		}

		a.TwoFactorEnabled = true
		a.UpdatedAt = s.Clock.now()
		return mapStoreErr(tx.Accounts().UpdateAccount(ctx, a))
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("2fa enabled", slog.String("account_id", accountID))
	return nil
}

// Disable2FA clears the secret and flag after re-checking the password. A
// wrong password leaves 2FA state untouched.
func (s *MFAService) Disable2FA(ctx context.Context, accountID, password string) error {
	a, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		return mapStoreErr(err)
	}
	// bcrypt runs before the write transaction so it never holds the lock.
	if err := checkPassword(password, a.PasswordHash); err != nil {
		slogx.FromContext(ctx).Warn("2fa disable rejected", slog.String("account_id", accountID))
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		cur, err := tx.Accounts().GetAccountByID(ctx, accountID)
		if err != nil {
			return mapStoreErr(err)
		}
		// the password may have changed since it was checked
		if cur.PasswordHash != a.PasswordHash {
			return ErrInvalidCredentials
		}
		cur.TwoFactorSecret = nil
		cur.TwoFactorEnabled = false
		cur.UpdatedAt = s.Clock.now()
		return mapStoreErr(tx.Accounts().UpdateAccount(ctx, cur))
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("2fa disabled", slog.String("account_id", accountID))
	return nil
}

func (s *MFAService) label(a domain.Account) string {
	if s.ServiceName == "" {
		return a.Username
	}
	return fmt.Sprintf("%s (%s)", s.ServiceName, a.Username)
}

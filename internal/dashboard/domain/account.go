package domain

import "time"

type Account struct {
	ID               string
	Username         string
	Email            string
	PasswordHash     string // bcrypt encoded
	Roles            []string
	TwoFactorSecret  *string // base32 TOTP seed, nil until setup
	TwoFactorEnabled bool    // only ever true while TwoFactorSecret is set
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	LastLogin        *time.Time
}

// TwoFactorState is where an account sits in the enrolment lifecycle.
type TwoFactorState int

const (
	TwoFactorNone TwoFactorState = iota
	TwoFactorPending
	TwoFactorEnabled
)

func (a Account) TwoFactorState() TwoFactorState {
	switch {
	case a.TwoFactorEnabled && a.TwoFactorSecret != nil:
		return TwoFactorEnabled
	case a.TwoFactorSecret != nil && *a.TwoFactorSecret != "":
		return TwoFactorPending
	default:
		return TwoFactorNone
	}
}

// AccountPatch is a partial update. Nil fields are left untouched; id and
// createdAt are not patchable at all.
type AccountPatch struct {
	Username *string
	Email    *string
	Password *string // plaintext, hashed by the service
	Roles    *[]string
	IsActive *bool
}

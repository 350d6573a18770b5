package domain_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestHasAnyRole(t *testing.T) {
	admin := domain.Account{Roles: []string{domain.RoleAdmin}}
	linker := domain.Account{Roles: []string{domain.RoleLinks}}
	photog := domain.Account{Roles: []string{domain.RolePhotos, domain.RoleMinecraft}}
	nobody := domain.Account{}

	tests := []struct {
		name     string
		account  domain.Account
		required []string
		want     bool
	}{
		{"admin passes any requirement", admin, []string{domain.RoleVaultwarden}, true},
		{"admin passes unknown role", admin, []string{"ghost"}, true},
		{"holder passes", linker, []string{domain.RoleLinks}, true},
		{"any of several", photog, []string{domain.RoleLinks, domain.RoleMinecraft}, true},
		{"lacking role fails", linker, []string{domain.RolePhotos}, false},
		{"admin requirement is not granted by others", linker, []string{domain.RoleAdmin}, false},
		{"empty requirement passes authenticated", nobody, nil, true},
		{"no roles fails requirement", nobody, []string{domain.RoleLinks}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.HasAnyRole(tt.account, tt.required...))
		})
	}
}

func TestNormalizeRoles(t *testing.T) {
	require.Equal(t, []string{"links", "admin"}, domain.NormalizeRoles([]string{"links", "", "admin", "links"}))
	require.Empty(t, domain.NormalizeRoles(nil))
}

func TestTwoFactorState(t *testing.T) {
	require.Equal(t, domain.TwoFactorNone, domain.Account{}.TwoFactorState())
	require.Equal(t, domain.TwoFactorPending, domain.Account{TwoFactorSecret: ptr("ABC")}.TwoFactorState())
	require.Equal(t, domain.TwoFactorEnabled, domain.Account{TwoFactorSecret: ptr("ABC"), TwoFactorEnabled: true}.TwoFactorState())
	// a flag without a secret is not a usable second factor
	require.Equal(t, domain.TwoFactorNone, domain.Account{TwoFactorEnabled: true}.TwoFactorState())
}

func TestLinkPolicy(t *testing.T) {
	owner := domain.Account{ID: "owner", Roles: []string{domain.RoleLinks}}
	other := domain.Account{ID: "other", Roles: []string{domain.RoleLinks}}
	admin := domain.Account{ID: "admin", Roles: []string{domain.RoleAdmin}}

	private := domain.Link{OwnerID: "owner"}
	public := domain.Link{OwnerID: "owner", IsPublic: true}

	require.True(t, private.VisibleTo(owner))
	require.False(t, private.VisibleTo(other))
	require.True(t, private.VisibleTo(admin))
	require.True(t, public.VisibleTo(other))

	require.True(t, private.MutableBy(owner))
	require.False(t, public.MutableBy(other))
	require.True(t, public.MutableBy(admin))
}

func TestLinkApply(t *testing.T) {
	created := time.Unix(1_700_000_000, 0).UTC()
	l := domain.Link{ID: "l1", Title: "Old", Category: "news", ClickCount: 7, CreatedAt: created, UpdatedAt: created}

	now := created.Add(time.Hour)
	l.Apply(domain.LinkPatch{Title: ptr("New"), Category: ptr(""), IsPublic: ptr(true)}, now)

	require.Equal(t, "New", l.Title)
	require.Equal(t, domain.DefaultCategory, l.Category)
	require.True(t, l.IsPublic)
	require.Equal(t, int64(7), l.ClickCount)
	require.Equal(t, created, l.CreatedAt)
	require.Equal(t, now, l.UpdatedAt)
}

func TestStats(t *testing.T) {
	accounts := []domain.Account{
		{Roles: []string{"admin", "links"}, IsActive: true, TwoFactorEnabled: true},
		{Roles: []string{"links"}, IsActive: true},
		{Roles: nil, IsActive: false},
	}
	us := domain.ComputeUserStats(accounts)
	require.Equal(t, 3, us.Total)
	require.Equal(t, 2, us.Active)
	require.Equal(t, 1, us.With2FA)
	require.Equal(t, map[string]int{"admin": 1, "links": 2}, us.ByRole)

	links := []domain.Link{
		{Category: "news", IsPublic: true, ClickCount: 3},
		{Category: "news", ClickCount: 1},
		{Category: ""},
	}
	ls := domain.ComputeLinkStats(links)
	require.Equal(t, 3, ls.Total)
	require.Equal(t, 1, ls.Public)
	require.Equal(t, int64(4), ls.TotalClicks)
	require.Equal(t, map[string]int{"news": 2, "uncategorized": 1}, ls.ByCategory)
}

func TestAvailableModules(t *testing.T) {
	names := func(ms []domain.Module) []string {
		out := []string{}
		for _, m := range ms {
			out = append(out, m.Name)
		}
		return out
	}

	require.Equal(t,
		[]string{"Links", "Photos", "Minecraft", "Vaultwarden", "Admin"},
		names(domain.AvailableModules(domain.Account{Roles: []string{"admin"}})))
	require.Equal(t,
		[]string{"Links", "Vaultwarden"},
		names(domain.AvailableModules(domain.Account{Roles: []string{"vaultwarden", "links"}})))
	require.Empty(t, domain.AvailableModules(domain.Account{}))
}

func TestValidator(t *testing.T) {
	t.Run("accepts good input", func(t *testing.T) {
		var v domain.Validator
		v.Username("alice_01-x")
		v.Email("alice@example.com")
		v.Password("secret1")
		v.Password(strings.Repeat("a", domain.MaxPasswordBytes))
		v.Roles([]string{"links", "admin"})
		v.TwoFactorCode("012345")
		v.Title("Router admin")
		v.URL("https://192.168.1.1/admin")
		v.Description("")
		v.Category("infra")
		require.NoError(t, v.Err())
	})

	tests := []struct {
		name  string
		check func(v *domain.Validator)
		field string
	}{
		{"short username", func(v *domain.Validator) { v.Username("ab") }, "username"},
		{"long username", func(v *domain.Validator) { v.Username("abcdefghijklmnopqrstuvwxyz012345") }, "username"},
		{"username charset", func(v *domain.Validator) { v.Username("alice!") }, "username"},
		{"email missing at", func(v *domain.Validator) { v.Email("alice.example.com") }, "email"},
		{"email display name", func(v *domain.Validator) { v.Email("Alice <alice@example.com>") }, "email"},
		{"short password", func(v *domain.Validator) { v.Password("12345") }, "password"},
		{"password over bcrypt limit", func(v *domain.Validator) { v.Password(strings.Repeat("a", domain.MaxPasswordBytes+1)) }, "password"},
		{"multibyte password over bcrypt limit", func(v *domain.Validator) { v.Password(strings.Repeat("é", 37)) }, "password"},
		{"unknown role", func(v *domain.Validator) { v.Roles([]string{"root"}) }, "roles"},
		{"code length", func(v *domain.Validator) { v.TwoFactorCode("12345") }, "twoFactorCode"},
		{"code numeric", func(v *domain.Validator) { v.TwoFactorCode("12a456") }, "twoFactorCode"},
		{"code non-ascii digits", func(v *domain.Validator) { v.TwoFactorCode("١٢٣٤٥٦") }, "twoFactorCode"},
		{"empty title", func(v *domain.Validator) { v.Title("   ") }, "title"},
		{"ftp url", func(v *domain.Validator) { v.URL("ftp://example.com") }, "url"},
		{"javascript url", func(v *domain.Validator) { v.URL("javascript:alert(1)") }, "url"},
		{"relative url", func(v *domain.Validator) { v.URL("/local") }, "url"},
		{"required", func(v *domain.Validator) { v.Required("password", "") }, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v domain.Validator
			tt.check(&v)
			err := v.Err()
			require.ErrorIs(t, err, domain.ErrInvalidInput)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, tt.field, verr.Violations[0].Field)
		})
	}
}

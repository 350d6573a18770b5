package service

import (
	"context"
	"strings"
	"testing"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/stretchr/testify/require"
)

func TestAccountAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)
	admin := h.register(t, "root", domain.RoleAdmin)

	bob, err := h.users.Create(ctx, RegisterInput{Username: "bob", Email: "bob@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.True(t, bob.IsActive, "admin-created accounts default to active")
	require.Empty(t, bob.Roles)

	all, err := h.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	t.Run("update", func(t *testing.T) {
		got, err := h.users.Update(ctx, bob.ID, domain.AccountPatch{
			Email:    ptr("robert@example.com"),
			Password: ptr("new-password"),
			Roles:    &[]string{domain.RoleLinks, domain.RolePhotos},
		})
		require.NoError(t, err)
		require.Equal(t, "robert@example.com", got.Email)
		require.Equal(t, []string{domain.RoleLinks, domain.RolePhotos}, got.Roles)

		_, err = h.auth.Login(ctx, "bob", "hunter22", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = h.auth.Login(ctx, "bob", "new-password", "")
		require.NoError(t, err)
	})

	t.Run("update collisions and validation", func(t *testing.T) {
		_, err := h.users.Update(ctx, bob.ID, domain.AccountPatch{Username: ptr("root")})
		require.ErrorIs(t, err, ErrDuplicateUsername)
		_, err = h.users.Update(ctx, bob.ID, domain.AccountPatch{Email: ptr("root@example.com")})
		require.ErrorIs(t, err, ErrDuplicateEmail)
		_, err = h.users.Update(ctx, bob.ID, domain.AccountPatch{Password: ptr("123")})
		require.ErrorIs(t, err, ErrInvalidInput)
		_, err = h.users.Update(ctx, bob.ID, domain.AccountPatch{Password: ptr(strings.Repeat("p", domain.MaxPasswordBytes+1))})
		require.ErrorIs(t, err, ErrInvalidInput)
		_, err = h.users.Update(ctx, "missing", domain.AccountPatch{IsActive: ptr(false)})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("reset two factor", func(t *testing.T) {
		_, err := h.mfa.Setup2FA(ctx, bob.ID)
		require.NoError(t, err)
		require.NoError(t, h.users.ResetTwoFactor(ctx, bob.ID))

		got, err := h.users.Get(ctx, bob.ID)
		require.NoError(t, err)
		require.Equal(t, domain.TwoFactorNone, got.TwoFactorState())
	})

	t.Run("self deletion is refused", func(t *testing.T) {
		err := h.users.Delete(ctx, admin, admin.ID)
		require.ErrorIs(t, err, ErrSelfDeletion)
		require.NotErrorIs(t, err, ErrNotFound)

		_, err = h.users.Get(ctx, admin.ID)
		require.NoError(t, err)
	})

	t.Run("delete cascades to links", func(t *testing.T) {
		h.createLink(t, bob, "doomed", true)
		require.NoError(t, h.users.Delete(ctx, admin, bob.ID))

		_, err := h.users.Get(ctx, bob.ID)
		require.ErrorIs(t, err, ErrNotFound)
		links, err := h.links.ListAll(ctx)
		require.NoError(t, err)
		require.Empty(t, links)

		require.ErrorIs(t, h.users.Delete(ctx, admin, bob.ID), ErrNotFound)
	})
}

func TestEnsureAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)

	boot := &BootstrapService{
		Store:    h.store,
		Clock:    h.clock.Now,
		Username: "admin",
		Email:    "admin@morjahome.local",
		Password: "change-me-please",
	}

	created, err := boot.EnsureAdmin(ctx)
	require.NoError(t, err)
	require.True(t, created)

	a := mustUser(t, h, "admin")
	require.Equal(t, domain.AllRoles, a.Roles)
	require.True(t, a.IsActive)

	created, err = boot.EnsureAdmin(ctx)
	require.NoError(t, err)
	require.False(t, created, "second run is a no-op")

	res, err := h.auth.Login(ctx, "admin", "change-me-please", "")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
}

func TestEnsureAdminConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)
	h.register(t, "admin", domain.RoleLinks)

	boot := &BootstrapService{Store: h.store, Clock: h.clock.Now, Username: "admin", Email: "root@example.com", Password: "change-me-please"}
	created, err := boot.EnsureAdmin(ctx)
	require.ErrorIs(t, err, ErrBootstrapConflict)
	require.False(t, created)
}

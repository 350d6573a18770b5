// Package storetest is a conformance suite every store driver must pass.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/store"
	"github.com/stretchr/testify/require"
)

// Opener returns a fresh, migrated store. It should register its own cleanup.
type Opener func(t *testing.T) store.Store

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func Run(t *testing.T, open Opener) {
	t.Run("Accounts", func(t *testing.T) { testAccounts(t, open) })
	t.Run("AccountUniqueness", func(t *testing.T) { testAccountUniqueness(t, open) })
	t.Run("Links", func(t *testing.T) { testLinks(t, open) })
	t.Run("Clicks", func(t *testing.T) { testClicks(t, open) })
	t.Run("ConcurrentClicks", func(t *testing.T) { testConcurrentClicks(t, open) })
	t.Run("CascadeDelete", func(t *testing.T) { testCascadeDelete(t, open) })
	t.Run("Transactions", func(t *testing.T) { testTransactions(t, open) })
	t.Run("Ping", func(t *testing.T) {
		require.NoError(t, open(t).Ping(context.Background()))
	})
}

func account(n int, roles ...string) domain.Account {
	at := base.Add(time.Duration(n) * time.Minute)
	if roles == nil {
		roles = []string{}
	}
	return domain.Account{
		ID:           fmt.Sprintf("acc-%02d", n),
		Username:     fmt.Sprintf("user%02d", n),
		Email:        fmt.Sprintf("user%02d@example.com", n),
		PasswordHash: "$2a$10$hash",
		Roles:        roles,
		IsActive:     true,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}

func link(n int, owner string, public bool) domain.Link {
	at := base.Add(time.Duration(n) * time.Minute)
	return domain.Link{
		ID:        fmt.Sprintf("link-%02d", n),
		Title:     fmt.Sprintf("Link %d", n),
		URL:       fmt.Sprintf("https://example.com/%d", n),
		Category:  domain.DefaultCategory,
		OwnerID:   owner,
		IsPublic:  public,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}

func linkID(l domain.Link) string       { return l.ID }
func accountID(a domain.Account) string { return a.ID }

func testAccounts(t *testing.T, open Opener) {
	ctx := context.Background()
	s := open(t)
	repo := s.Accounts()

	empty, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Empty(t, empty)

	a := account(1, domain.RoleAdmin, domain.RoleLinks)
	b := account(2)
	require.NoError(t, repo.CreateAccount(ctx, b))
	require.NoError(t, repo.CreateAccount(ctx, a))

	got, err := repo.GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, a.Username, got.Username)
	require.Equal(t, a.Email, got.Email)
	require.Equal(t, []string{"admin", "links"}, got.Roles)
	require.True(t, got.IsActive)
	require.Nil(t, got.TwoFactorSecret)
	require.Nil(t, got.LastLogin)
	require.True(t, a.CreatedAt.Equal(got.CreatedAt))

	got, err = repo.GetAccountByUsername(ctx, "user02")
	require.NoError(t, err)
	require.Equal(t, b.ID, got.ID)

	_, err = repo.GetAccountByUsername(ctx, "USER02")
	require.ErrorIs(t, err, store.ErrNotFound, "usernames are case-sensitive")

	got, err = repo.GetAccountByEmail(ctx, b.Email)
	require.NoError(t, err)
	require.Equal(t, b.ID, got.ID)

	_, err = repo.GetAccountByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	all, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{a.ID, b.ID}, ids(all, accountID), "ordered by creation")

	admins, err := repo.CountAdmins(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, admins)

	// full-record update
	secret := "JBSWY3DPEHPK3PXP"
	b.Username = "renamed"
	b.Roles = []string{domain.RolePhotos}
	b.TwoFactorSecret = &secret
	b.TwoFactorEnabled = true
	b.IsActive = false
	b.UpdatedAt = base.Add(time.Hour)
	require.NoError(t, repo.UpdateAccount(ctx, b))

	got, err = repo.GetAccountByUsername(ctx, "renamed")
	require.NoError(t, err)
	require.Equal(t, []string{"photos"}, got.Roles)
	require.NotNil(t, got.TwoFactorSecret)
	require.Equal(t, secret, *got.TwoFactorSecret)
	require.True(t, got.TwoFactorEnabled)
	require.False(t, got.IsActive)
	require.True(t, b.UpdatedAt.Equal(got.UpdatedAt))

	_, err = repo.GetAccountByUsername(ctx, "user02")
	require.ErrorIs(t, err, store.ErrNotFound, "old username released")

	// clearing the secret round-trips as nil
	b.TwoFactorSecret = nil
	b.TwoFactorEnabled = false
	require.NoError(t, repo.UpdateAccount(ctx, b))
	got, err = repo.GetAccountByID(ctx, b.ID)
	require.NoError(t, err)
	require.Nil(t, got.TwoFactorSecret)

	require.ErrorIs(t, repo.UpdateAccount(ctx, account(99)), store.ErrNotFound)

	login := base.Add(2 * time.Hour)
	require.NoError(t, repo.UpdateLastLogin(ctx, a.ID, login))
	got, err = repo.GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	require.True(t, login.Equal(*got.LastLogin))
	require.ErrorIs(t, repo.UpdateLastLogin(ctx, "missing", login), store.ErrNotFound)

	require.NoError(t, repo.DeleteAccount(ctx, b.ID))
	_, err = repo.GetAccountByID(ctx, b.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, repo.DeleteAccount(ctx, b.ID), store.ErrNotFound)
}

func testAccountUniqueness(t *testing.T, open Opener) {
	ctx := context.Background()
	repo := open(t).Accounts()

	a := account(1)
	require.NoError(t, repo.CreateAccount(ctx, a))

	dupUser := account(2)
	dupUser.Username = a.Username
	err := repo.CreateAccount(ctx, dupUser)
	require.ErrorIs(t, err, store.ErrUsernameTaken)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	dupEmail := account(3)
	dupEmail.Email = a.Email
	require.ErrorIs(t, repo.CreateAccount(ctx, dupEmail), store.ErrEmailTaken)

	// case differs, so these are distinct
	caseUser := account(4)
	caseUser.Username = "USER01"
	require.NoError(t, repo.CreateAccount(ctx, caseUser))

	// renaming onto an existing username collides
	caseUser.Username = a.Username
	require.ErrorIs(t, repo.UpdateAccount(ctx, caseUser), store.ErrUsernameTaken)
	caseUser.Username = "USER01"
	caseUser.Email = a.Email
	require.ErrorIs(t, repo.UpdateAccount(ctx, caseUser), store.ErrEmailTaken)

	// a failed create must not leave a half-claimed username behind
	_, err = repo.GetAccountByID(ctx, dupEmail.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	free := account(3)
	require.NoError(t, repo.CreateAccount(ctx, free))
}

func testLinks(t *testing.T, open Opener) {
	ctx := context.Background()
	s := open(t)
	owner, other := account(1), account(2)
	require.NoError(t, s.Accounts().CreateAccount(ctx, owner))
	require.NoError(t, s.Accounts().CreateAccount(ctx, other))

	repo := s.Links()
	l1 := link(1, owner.ID, false)
	l2 := link(2, owner.ID, true)
	l3 := link(3, other.ID, true)
	l3.Description = "shared"
	l3.Category = "infra"
	for _, l := range []domain.Link{l1, l3, l2} {
		require.NoError(t, repo.CreateLink(ctx, l))
	}

	require.Error(t, repo.CreateLink(ctx, link(4, "ghost", false)), "owner must exist")

	all, err := repo.ListLinks(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{l3.ID, l2.ID, l1.ID}, ids(all, linkID), "newest first")

	mine, err := repo.ListLinksByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, []string{l2.ID, l1.ID}, ids(mine, linkID))

	public, err := repo.ListPublicLinks(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{l3.ID, l2.ID}, ids(public, linkID))

	got, err := repo.GetLinkByID(ctx, l3.ID)
	require.NoError(t, err)
	require.Equal(t, "shared", got.Description)
	require.Equal(t, "infra", got.Category)
	require.Equal(t, int64(0), got.ClickCount)
	require.Nil(t, got.LastClicked)

	_, err = repo.GetLinkByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	// UpdateLink never rewrites the click counter or creation time
	_, err = repo.IncrementClick(ctx, l1.ID, base.Add(time.Hour))
	require.NoError(t, err)
	upd := l1
	upd.Title = "Renamed"
	upd.OwnerID = other.ID
	upd.ClickCount = 1000
	upd.CreatedAt = base.Add(99 * time.Hour)
	upd.UpdatedAt = base.Add(2 * time.Hour)
	require.NoError(t, repo.UpdateLink(ctx, upd))

	got, err = repo.GetLinkByID(ctx, l1.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Title)
	require.Equal(t, other.ID, got.OwnerID)
	require.Equal(t, int64(1), got.ClickCount)
	require.True(t, l1.CreatedAt.Equal(got.CreatedAt))
	require.True(t, upd.UpdatedAt.Equal(got.UpdatedAt))

	require.ErrorIs(t, repo.UpdateLink(ctx, link(50, owner.ID, false)), store.ErrNotFound)

	require.NoError(t, repo.DeleteLink(ctx, l2.ID))
	require.ErrorIs(t, repo.DeleteLink(ctx, l2.ID), store.ErrNotFound)
}

func testClicks(t *testing.T, open Opener) {
	ctx := context.Background()
	s := open(t)
	owner := account(1)
	require.NoError(t, s.Accounts().CreateAccount(ctx, owner))
	l := link(1, owner.ID, false)
	require.NoError(t, s.Links().CreateLink(ctx, l))

	for i := 1; i <= 3; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		got, err := s.Links().IncrementClick(ctx, l.ID, at)
		require.NoError(t, err)
		require.Equal(t, int64(i), got.ClickCount)
		require.NotNil(t, got.LastClicked)
		require.True(t, at.Equal(*got.LastClicked))
	}

	_, err := s.Links().IncrementClick(ctx, "missing", base)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testConcurrentClicks(t *testing.T, open Opener) {
	ctx := context.Background()
	s := open(t)
	owner := account(1)
	require.NoError(t, s.Accounts().CreateAccount(ctx, owner))
	l := link(1, owner.ID, true)
	require.NoError(t, s.Links().CreateLink(ctx, l))

	const workers, perWorker = 8, 25
	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				if _, err := s.Links().IncrementClick(ctx, l.ID, time.Now()); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := s.Links().GetLinkByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, int64(workers*perWorker), got.ClickCount, "no click may be lost")
}

func testCascadeDelete(t *testing.T, open Opener) {
	ctx := context.Background()
	s := open(t)
	owner, other := account(1), account(2)
	require.NoError(t, s.Accounts().CreateAccount(ctx, owner))
	require.NoError(t, s.Accounts().CreateAccount(ctx, other))
	require.NoError(t, s.Links().CreateLink(ctx, link(1, owner.ID, true)))
	require.NoError(t, s.Links().CreateLink(ctx, link(2, owner.ID, false)))
	require.NoError(t, s.Links().CreateLink(ctx, link(3, other.ID, false)))

	require.NoError(t, s.Accounts().DeleteAccount(ctx, owner.ID))

	all, err := s.Links().ListLinks(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"link-03"}, ids(all, linkID))
}

func testTransactions(t *testing.T, open Opener) {
	ctx := context.Background()
	s := open(t)
	a := account(1)
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))

	t.Run("commit", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			cur, err := tx.Accounts().GetAccountByID(ctx, a.ID)
			if err != nil {
				return err
			}
			cur.Email = "committed@example.com"
			return tx.Accounts().UpdateAccount(ctx, cur)
		})
		require.NoError(t, err)

		got, err := s.Accounts().GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, "committed@example.com", got.Email)
	})

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Accounts().CreateAccount(ctx, account(2)); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.Accounts().GetAccountByID(ctx, "acc-02")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Accounts().GetAccountByUsername(ctx, "user02")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("explicit tx", func(t *testing.T) {
		tx, err := s.Tx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Accounts().CreateAccount(ctx, account(3)))
		require.NoError(t, tx.Rollback())

		_, err = s.Accounts().GetAccountByID(ctx, "acc-03")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("no nesting", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.Error(t, err)
	})
}

package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/store"
	"github.com/morjahome/dashboard/internal/dashboard/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// harness wires every service against one temp-file sqlite store.
type harness struct {
	store  store.Store
	clock  *fakeClock
	tokens *TokenService
	auth   *AuthService
	mfa    *MFAService
	access *AccessService
	links  *LinkService
	users  *AccountService
	stats  *StatsService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "svc.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	clock := newFakeClock()
	tokens, err := NewTokenService(testSecret, "morjahome-test", 24*time.Hour)
	require.NoError(t, err)
	tokens.Clock = clock.Now

	return &harness{
		store:  s,
		clock:  clock,
		tokens: tokens,
		auth:   &AuthService{Store: s, Tokens: tokens, Clock: clock.Now},
		mfa:    &MFAService{Store: s, Clock: clock.Now, Issuer: "MorjaHome Dashboard", ServiceName: "MorjaHome"},
		access: &AccessService{Store: s, Tokens: tokens},
		links:  &LinkService{Store: s, Clock: clock.Now},
		users:  &AccountService{Store: s, Clock: clock.Now},
		stats:  &StatsService{Store: s, Clock: clock.Now, StartedAt: clock.Now()},
	}
}

func (h *harness) register(t *testing.T, username string, roles ...string) domain.Account {
	t.Helper()
	a, err := h.auth.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "password-" + username,
		Roles:    roles,
	})
	require.NoError(t, err)
	return a
}

func (h *harness) createLink(t *testing.T, owner domain.Account, title string, public bool) domain.Link {
	t.Helper()
	l, err := h.links.Create(context.Background(), owner, domain.NewLink{
		Title:    title,
		URL:      "https://example.com/" + title,
		IsPublic: public,
	})
	require.NoError(t, err)
	h.clock.Advance(time.Second) // distinct createdAt for ordering
	return l
}

func ptr[T any](v T) *T { return &v }

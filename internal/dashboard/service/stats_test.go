package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", domain.RoleLinks, domain.RolePhotos)
	bob := h.register(t, "bob", domain.RoleLinks)
	h.createLink(t, bob, "not-mine", true)

	var created []domain.Link
	for i := range 7 {
		created = append(created, h.createLink(t, alice, fmt.Sprintf("l%d", i), i%2 == 0))
	}
	// l1 gets 3 clicks, l4 gets 1, l6 gets 2
	for id, n := range map[string]int{created[1].ID: 3, created[4].ID: 1, created[6].ID: 2} {
		for range n {
			_, err := h.links.Click(ctx, alice, id)
			require.NoError(t, err)
		}
	}

	d, err := h.stats.Dashboard(ctx, alice)
	require.NoError(t, err)

	require.Equal(t, "alice", d.User.Username)
	require.Equal(t, 7, d.Stats.TotalLinks)
	require.Equal(t, int64(6), d.Stats.TotalClicks)
	require.Equal(t, 4, d.Stats.PublicLinks)

	require.Len(t, d.RecentLinks, 5)
	require.Equal(t, created[6].ID, d.RecentLinks[0].ID)
	require.Equal(t, created[2].ID, d.RecentLinks[4].ID)

	require.Len(t, d.PopularLinks, 3)
	require.Equal(t, []string{created[1].ID, created[6].ID, created[4].ID},
		[]string{d.PopularLinks[0].ID, d.PopularLinks[1].ID, d.PopularLinks[2].ID})

	names := []string{}
	for _, m := range d.AvailableModules {
		names = append(names, m.Name)
	}
	require.Equal(t, []string{"Links", "Photos"}, names)
}

func TestDashboardEmpty(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	carol := h.register(t, "carol")

	d, err := h.stats.Dashboard(context.Background(), carol)
	require.NoError(t, err)
	require.NotNil(t, d.RecentLinks)
	require.NotNil(t, d.PopularLinks)
	require.Empty(t, d.AvailableModules)
	require.Equal(t, []string{}, d.User.Roles)
}

func TestStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)
	admin := h.register(t, "root", domain.RoleAdmin)
	alice := h.register(t, "alice", domain.RoleLinks)
	h.createLink(t, alice, "pub", true)
	h.createLink(t, alice, "priv", false)
	h.clock.Advance(90 * time.Second)

	st, err := h.stats.Status(ctx, alice)
	require.NoError(t, err)
	require.Nil(t, st.Admin)
	require.InDelta(t, 92, st.Server.UptimeSeconds, 0.001)
	require.True(t, h.clock.Now().Equal(st.Timestamp))

	st, err = h.stats.Status(ctx, admin)
	require.NoError(t, err)
	require.NotNil(t, st.Admin)
	require.Equal(t, domain.AdminStatus{TotalUsers: 2, ActiveUsers: 2, TotalLinks: 2, PublicLinks: 1}, *st.Admin)
}

func TestSystemStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)
	h.register(t, "root", domain.RoleAdmin)
	alice := h.register(t, "alice", domain.RoleLinks, domain.RolePhotos)
	_, err := h.users.Update(ctx, alice.ID, domain.AccountPatch{IsActive: ptr(false)})
	require.NoError(t, err)

	l := h.createLink(t, alice, "x", true)
	_, err = h.links.Click(ctx, alice, l.ID)
	require.NoError(t, err)
	_, err = h.links.Create(ctx, alice, domain.NewLink{Title: "y", URL: "https://y.dev", Category: "tools"})
	require.NoError(t, err)

	s, err := h.stats.System(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, s.Users.Total)
	require.Equal(t, 1, s.Users.Active)
	require.Equal(t, map[string]int{"admin": 1, "links": 1, "photos": 1}, s.Users.ByRole)
	require.Equal(t, 2, s.Links.Total)
	require.Equal(t, 1, s.Links.Public)
	require.Equal(t, int64(1), s.Links.TotalClicks)
	require.Equal(t, map[string]int{"general": 1, "tools": 1}, s.Links.ByCategory)
	require.NotEmpty(t, s.System.GoVersion)
	require.Positive(t, s.System.Memory.Sys)
}

package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/pkg/dashsdk"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutesRequireAdmin(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	_, plain := ts.user(t, "alice", domain.RoleLinks, domain.RolePhotos, domain.RoleMinecraft, domain.RoleVaultwarden)

	for _, path := range []string{"/api/admin/users", "/api/admin/links", "/api/admin/stats"} {
		resp := ts.do(t, http.MethodGet, path, plain.Token(), "")
		require.Equal(t, http.StatusForbidden, resp.StatusCode, path)
	}
}

func TestAdminUserManagement(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ctx := context.Background()

	root, admin := ts.user(t, "root", domain.RoleAdmin)

	created, err := admin.CreateUser(ctx, dashsdk.RegisterRequest{
		Username: "henry", Email: "henry@example.com", Password: "secret1",
		Roles: []string{domain.RoleLinks}, IsActive: ptr(false),
	})
	require.NoError(t, err)
	require.False(t, created.IsActive)

	_, err = admin.CreateUser(ctx, dashsdk.RegisterRequest{Username: "henry", Email: "other@example.com", Password: "secret1"})
	requireAPIError(t, err, http.StatusConflict, dashsdk.CodeDuplicateUsername)

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	got, err := admin.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "henry@example.com", got.Email)

	_, err = admin.GetUser(ctx, "missing")
	apiErr := requireAPIError(t, err, http.StatusNotFound, dashsdk.CodeNotFound)
	require.Equal(t, "User not found", apiErr.Message)

	updated, err := admin.UpdateUser(ctx, created.ID, dashsdk.UpdateUserRequest{
		IsActive: ptr(true),
		Password: ptr("changed-secret"),
		Roles:    &[]string{domain.RoleLinks, domain.RolePhotos},
	})
	require.NoError(t, err)
	require.True(t, updated.IsActive)
	require.Equal(t, []string{domain.RoleLinks, domain.RolePhotos}, updated.Roles)

	_, err = admin.UpdateUser(ctx, created.ID, dashsdk.UpdateUserRequest{Roles: &[]string{"wizard"}})
	requireAPIError(t, err, http.StatusBadRequest, dashsdk.CodeValidationFailed)

	henry, err := ts.client.Login(ctx, "henry", "changed-secret", "")
	require.NoError(t, err)
	_, err = henry.Setup2FA(ctx)
	require.NoError(t, err)

	reset, err := admin.ResetUser2FA(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, reset.TwoFactorEnabled)
	requireAPIError(t, henry.Enable2FA(ctx, "123456"), http.StatusBadRequest, dashsdk.CodeTwoFactorNotInitiated)

	err = admin.DeleteUser(ctx, root.ID)
	apiErr = requireAPIError(t, err, http.StatusBadRequest, dashsdk.CodeSelfDeletion)
	require.Equal(t, "Cannot delete your own account", apiErr.Message)

	link, err := henry.CreateLink(ctx, dashsdk.CreateLinkRequest{Title: "Wiki", URL: "http://wiki.lan"})
	require.NoError(t, err)

	require.NoError(t, admin.DeleteUser(ctx, created.ID))
	_, err = admin.GetUser(ctx, created.ID)
	requireAPIError(t, err, http.StatusNotFound, dashsdk.CodeNotFound)

	// the account's links go with it
	links, err := admin.ListAllLinks(ctx)
	require.NoError(t, err)
	require.NotContains(t, linkIDs(links), link.ID)
}

func TestAdminLinksAndStats(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ctx := context.Background()

	_, admin := ts.user(t, "root", domain.RoleAdmin)
	_, alice := ts.user(t, "alice", domain.RoleLinks)

	private, err := alice.CreateLink(ctx, dashsdk.CreateLinkRequest{Title: "NAS", URL: "http://nas.lan", Category: "storage"})
	require.NoError(t, err)
	_, err = alice.CreateLink(ctx, dashsdk.CreateLinkRequest{Title: "Plex", URL: "http://plex.lan", IsPublic: true})
	require.NoError(t, err)

	all, err := admin.ListAllLinks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// admins can read and click private links they do not own
	_, err = admin.GetLink(ctx, private.ID)
	require.NoError(t, err)
	_, err = admin.ClickLink(ctx, private.ID)
	require.NoError(t, err)

	stats, err := admin.SystemStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Users.Total)
	require.Equal(t, 2, stats.Users.Active)
	require.Equal(t, 1, stats.Users.ByRole[domain.RoleAdmin])
	require.Equal(t, 2, stats.Links.Total)
	require.Equal(t, 1, stats.Links.Public)
	require.Equal(t, int64(1), stats.Links.TotalClicks)
	require.Equal(t, 1, stats.Links.ByCategory["storage"])
	require.Positive(t, stats.System.Goroutines)

	require.NoError(t, admin.DeleteAnyLink(ctx, private.ID))
	err = admin.DeleteAnyLink(ctx, private.ID)
	requireAPIError(t, err, http.StatusNotFound, dashsdk.CodeNotFound)
}

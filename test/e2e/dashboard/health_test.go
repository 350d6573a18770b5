package dashboard_test

import (
	"testing"

	"github.com/morjahome/dashboard/pkg/dashsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	for _, driver := range []string{"sqlite", "bolt"} {
		t.Run(driver, func(t *testing.T) {
			client := dashsdk.NewSDKClient(setupDashboard(t, driver, nil))

			live, err := client.GetLiveness(t.Context())
			require.NoError(t, err)
			require.Equal(t, "ok", live.Status)

			ready, err := client.GetReadiness(t.Context())
			require.NoError(t, err)
			require.Equal(t, "ok", ready.Status)
			require.NotNil(t, ready.Checks)
			require.Equal(t, "ok", ready.Checks.Database)
		})
	}
}

func TestDefaultAdminIsBootstrapped(t *testing.T) {
	client := dashsdk.NewSDKClient(setupDashboard(t, "sqlite", nil))

	session := loginAdmin(t, client)
	require.Contains(t, session.User().Roles, "admin")

	status, err := session.Status(t.Context())
	require.NoError(t, err)
	require.NotNil(t, status.Admin)
	require.Equal(t, 1, status.Admin.TotalUsers)
}

package dashboard_test

import (
	"net/http"
	"testing"

	"github.com/morjahome/dashboard/pkg/dashsdk"
	"github.com/stretchr/testify/require"
)

// TestLoginRateLimit verifies the strict login limit (5/min per IP and
// username) under the production defaults.
func TestLoginRateLimit(t *testing.T) {
	ctx := t.Context()
	client := dashsdk.NewSDKClient(setupDashboard(t, "sqlite", nil))

	for i := range 5 {
		_, err := client.Login(ctx, "mallory", "wrong-password", "")
		requireStatus(t, err, http.StatusUnauthorized, dashsdk.CodeInvalidCredentials)
		t.Logf("attempt %d rejected as invalid credentials", i+1)
	}

	_, err := client.Login(ctx, "mallory", "wrong-password", "")
	requireRateLimited(t, err)

	// a different username is a different bucket
	_, err = client.Login(ctx, adminUsername, adminPassword, "")
	require.NoError(t, err)
}

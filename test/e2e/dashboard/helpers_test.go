package dashboard_test

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/morjahome/dashboard/pkg/dashsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared assertions for the dashboard end-to-end tests.
 * Every test gets a fresh container, so state never leaks between tests.
 */

const (
	testImageName = "morjahome-dashboard-test:latest"

	adminUsername = "admin"
	adminPassword = "e2e-admin-password"
	jwtSecret     = "e2e-secret-that-is-at-least-32-bytes-long"
)

// relaxedLimits keeps burst-heavy tests clear of the production limits.
var relaxedLimits = map[string]string{
	"RATELIMIT_GLOBAL_REQUESTS":   "10000",
	"RATELIMIT_GLOBAL_BURST":      "10000",
	"RATELIMIT_STRICT_REQUESTS":   "1000",
	"RATELIMIT_STRICT_WINDOW_SEC": "60",
	"RATELIMIT_STRICT_BURST":      "1000",
	"RATELIMIT_MODERATE_REQUESTS": "1000",
	"RATELIMIT_MODERATE_BURST":    "1000",
}

// TestMain builds the image once for the whole package.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building dashboard Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up dashboard Docker image...")
	_ = exec.Command("docker", "rmi", "-f", testImageName).Run()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/dashboard/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

// setupDashboard starts a container and returns its base URL. driver picks
// the store; extra env entries override the defaults.
func setupDashboard(t *testing.T, driver string, extra map[string]string) string {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"ENV":                    "production",
		"JWT_SECRET":             jwtSecret,
		"DEFAULT_ADMIN_USERNAME": adminUsername,
		"DEFAULT_ADMIN_PASSWORD": adminPassword,
		"STORE_DRIVER":           driver,
		"LOG_LEVEL":              "info",
	}
	maps.Copy(env, extra)

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"3000/tcp"},
			Env:          env,
			WaitingFor: wait.ForHTTP("/readyz").
				WithPort("3000/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	port, err := container.MappedPort(ctx, "3000")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, port.Port())
}

func loginAdmin(t *testing.T, client *dashsdk.SDKClient) *dashsdk.Session {
	t.Helper()
	session, err := client.Login(t.Context(), adminUsername, adminPassword, "")
	require.NoError(t, err, "admin login should succeed")
	return session
}

// requireStatus checks err is an API error with the given status and code.
func requireStatus(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *dashsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *dashsdk.APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Message)
	require.Equal(t, code, apiErr.Code)
}

func requireRateLimited(t *testing.T, err error) {
	t.Helper()
	requireStatus(t, err, http.StatusTooManyRequests, dashsdk.CodeRateLimited)
}

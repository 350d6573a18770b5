package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	dashhttp "github.com/morjahome/dashboard/internal/dashboard/http"
	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/service"
	"github.com/morjahome/dashboard/internal/dashboard/store/drivers/bolt"
	"github.com/morjahome/dashboard/pkg/dashsdk"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	srv    *httptest.Server
	client *dashsdk.SDKClient
	auth   *service.AuthService
	access *service.AccessService
	users  *service.AccountService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := bolt.Open(filepath.Join(t.TempDir(), "http.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens, err := service.NewTokenService([]byte("0123456789abcdef0123456789abcdef"), "morjahome-test", time.Hour)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := dashhttp.NewRouter("test", "*", nil, st, logger)
	r.AuthService = &service.AuthService{Store: st, Tokens: tokens}
	r.MFAService = &service.MFAService{Store: st, Issuer: "MorjaHome Dashboard", ServiceName: "MorjaHome"}
	r.AccessService = &service.AccessService{Store: st, Tokens: tokens}
	r.LinkService = &service.LinkService{Store: st}
	r.AccountService = &service.AccountService{Store: st}
	r.StatsService = &service.StatsService{Store: st, StartedAt: time.Now()}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testServer{
		srv:    srv,
		client: dashsdk.NewSDKClient(srv.URL),
		auth:   r.AuthService,
		access: r.AccessService,
		users:  r.AccountService,
	}
}

func password(username string) string { return "password-" + username }

// user registers an account directly through the service layer and returns
// a logged-in session for it.
func (ts *testServer) user(t *testing.T, username string, roles ...string) (domain.Account, *dashsdk.Session) {
	t.Helper()
	a, err := ts.auth.Register(context.Background(), service.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: password(username),
		Roles:    roles,
	})
	require.NoError(t, err)

	session, err := ts.client.Login(context.Background(), username, password(username), "")
	require.NoError(t, err)
	return a, session
}

func (ts *testServer) do(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, rd)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func requireAPIError(t *testing.T, err error, status int, code string) *dashsdk.APIError {
	t.Helper()
	var apiErr *dashsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Message)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestHealthAndFallback(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ctx := context.Background()

	live, err := ts.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := ts.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)

	resp := ts.do(t, http.MethodGet, "/api/nope", "", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	require.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	body := decode[dashsdk.ErrorResponse](t, resp)
	require.Equal(t, dashsdk.CodeRouteNotFound, body.Code)
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.srv.URL+"/api/links", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://dashboard.lan")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, resp.Header.Get("Access-Control-Allow-Credentials"))
}

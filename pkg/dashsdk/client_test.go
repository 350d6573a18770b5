package dashsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestLoginOpensSession(t *testing.T) {
	t.Parallel()

	expires := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Password != "hunter22" {
				writeJSON(t, w, http.StatusUnauthorized, ErrorResponse{Code: CodeInvalidCredentials, Message: "Invalid credentials"})
				return
			}
			writeJSON(t, w, http.StatusOK, LoginResponse{
				Message:   "Login successful",
				User:      User{ID: "u1", Username: req.Username, Roles: []string{"links"}},
				Token:     "tok-123",
				ExpiresAt: expires,
			})
		case "/api/auth/profile":
			require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, UserResponse{User: User{ID: "u1", Username: "alice", Email: "alice@example.com"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewSDKClient(srv.URL + "/")
	ctx := context.Background()

	_, err := client.Login(ctx, "alice", "wrong", "")
	require.True(t, IsCode(err, CodeInvalidCredentials))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Invalid credentials", apiErr.Message)

	session, err := client.Login(ctx, "alice", "hunter22", "")
	require.NoError(t, err)
	require.Equal(t, "tok-123", session.Token())
	require.Equal(t, expires, session.ExpiresAt())
	require.Equal(t, "alice", session.User().Username)

	profile, err := session.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", profile.Email)
	require.Equal(t, "alice@example.com", session.User().Email)
}

func TestValidationErrorsAreDecoded(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Validation failed",
			Errors:  []FieldError{{Field: "url", Message: "must be an http or https URL"}},
		})
	}))
	defer srv.Close()

	session := NewSDKClient(srv.URL).NewSessionFromToken("tok")
	_, err := session.CreateLink(context.Background(), CreateLinkRequest{Title: "x", URL: "ftp://x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, CodeValidationFailed, apiErr.Code)
	require.Len(t, apiErr.Errors, 1)
	require.Equal(t, "url", apiErr.Errors[0].Field)
}

func TestNonJSONErrorBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewSDKClient(srv.URL).GetLiveness(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, CodeInternal, apiErr.Code)
	require.Contains(t, apiErr.Message, "Bad Gateway")
}

func TestLinkQueryEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query LinkQuery
		want  string
	}{
		{"empty", LinkQuery{}, ""},
		{"category", LinkQuery{Category: "media"}, "?category=media"},
		{"include public", LinkQuery{IncludePublic: true}, "?includePublic=true"},
		{"both", LinkQuery{Category: "home lab", IncludePublic: true}, "?category=home+lab&includePublic=true"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.query.encode())
		})
	}
}

func TestSessionRoutes(t *testing.T) {
	t.Parallel()

	type call struct{ method, path string }
	var (
		mu   sync.Mutex
		seen []call
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, call{r.Method, r.URL.RequestURI()})
		mu.Unlock()
		switch {
		case r.URL.Path == "/api/links/public":
			require.Empty(t, r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, LinksResponse{Links: []Link{{ID: "l1"}}})
		case r.URL.RawPath == "/api/links/a%2Fb/click":
			writeJSON(t, w, http.StatusOK, ClickResponse{Message: "Link clicked", URL: "http://x", ClickCount: 3})
		default:
			writeJSON(t, w, http.StatusOK, MessageResponse{Message: "ok"})
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	client := NewSDKClient(srv.URL)

	links, err := client.PublicLinks(ctx, "")
	require.NoError(t, err)
	require.Len(t, links, 1)

	session := client.NewSessionFromToken("tok")
	click, err := session.ClickLink(ctx, "a/b")
	require.NoError(t, err)
	require.Equal(t, int64(3), click.ClickCount)

	require.NoError(t, session.Enable2FA(ctx, "123456"))
	require.NoError(t, session.DeleteUser(ctx, "u2"))
	require.NoError(t, session.DeleteAnyLink(ctx, "l9"))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []call{
		{http.MethodGet, "/api/links/public"},
		{http.MethodPost, "/api/links/a%2Fb/click"},
		{http.MethodPost, "/api/auth/2fa/enable"},
		{http.MethodDelete, "/api/admin/users/u2"},
		{http.MethodDelete, "/api/admin/links/l9"},
	}, seen)
}

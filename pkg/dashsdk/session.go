package dashsdk

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Session is an authenticated handle bound to one bearer token.
type Session struct {
	client *SDKClient

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	user      User
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ExpiresAt is zero for sessions built with NewSessionFromToken.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// User is the account as of login or the last Profile call.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) do(ctx context.Context, method, path string, in, out any) error {
	return s.client.do(ctx, method, path, s.Token(), in, out)
}

// Profile fetches the current account and caches it on the session.
func (s *Session) Profile(ctx context.Context) (User, error) {
	var resp UserResponse
	if err := s.do(ctx, http.MethodGet, "/api/auth/profile", nil, &resp); err != nil {
		return User{}, err
	}
	s.mu.Lock()
	s.user = resp.User
	s.mu.Unlock()
	return resp.User, nil
}

// Logout is informational; the token stays valid until it expires.
func (s *Session) Logout(ctx context.Context) error {
	return s.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (s *Session) Setup2FA(ctx context.Context) (TwoFactorSetupResponse, error) {
	var resp TwoFactorSetupResponse
	err := s.do(ctx, http.MethodPost, "/api/auth/2fa/setup", nil, &resp)
	return resp, err
}

func (s *Session) Enable2FA(ctx context.Context, code string) error {
	return s.do(ctx, http.MethodPost, "/api/auth/2fa/enable", TwoFactorCodeRequest{TwoFactorCode: code}, nil)
}

func (s *Session) Disable2FA(ctx context.Context, password string) error {
	return s.do(ctx, http.MethodPost, "/api/auth/2fa/disable", DisableTwoFactorRequest{Password: password}, nil)
}

func (s *Session) Dashboard(ctx context.Context) (DashboardResponse, error) {
	var resp DashboardResponse
	err := s.do(ctx, http.MethodGet, "/api/dashboard", nil, &resp)
	return resp, err
}

func (s *Session) Status(ctx context.Context) (StatusResponse, error) {
	var resp StatusResponse
	err := s.do(ctx, http.MethodGet, "/api/dashboard/status", nil, &resp)
	return resp, err
}

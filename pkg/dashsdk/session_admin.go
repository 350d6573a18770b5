package dashsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates an account. The endpoint requires the admin role.
func (s *Session) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var resp UserResponse
	err := s.do(ctx, http.MethodPost, "/api/auth/register", req, &resp)
	return resp.User, err
}

func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	var resp UsersResponse
	if err := s.do(ctx, http.MethodGet, "/api/admin/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (s *Session) GetUser(ctx context.Context, id string) (User, error) {
	var resp UserResponse
	err := s.do(ctx, http.MethodGet, "/api/admin/users/"+url.PathEscape(id), nil, &resp)
	return resp.User, err
}

func (s *Session) CreateUser(ctx context.Context, req RegisterRequest) (User, error) {
	var resp UserResponse
	err := s.do(ctx, http.MethodPost, "/api/admin/users", req, &resp)
	return resp.User, err
}

func (s *Session) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (User, error) {
	var resp UserResponse
	err := s.do(ctx, http.MethodPut, "/api/admin/users/"+url.PathEscape(id), req, &resp)
	return resp.User, err
}

func (s *Session) DeleteUser(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/api/admin/users/"+url.PathEscape(id), nil, nil)
}

// ResetUser2FA clears both the enabled and the pending secret of an account.
func (s *Session) ResetUser2FA(ctx context.Context, id string) (User, error) {
	var resp UserResponse
	err := s.do(ctx, http.MethodPost, "/api/admin/users/"+url.PathEscape(id)+"/reset-2fa", nil, &resp)
	return resp.User, err
}

func (s *Session) ListAllLinks(ctx context.Context) ([]Link, error) {
	var resp LinksResponse
	if err := s.do(ctx, http.MethodGet, "/api/admin/links", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Links, nil
}

func (s *Session) SystemStats(ctx context.Context) (SystemStatsResponse, error) {
	var resp SystemStatsResponse
	err := s.do(ctx, http.MethodGet, "/api/admin/stats", nil, &resp)
	return resp, err
}

// DeleteAnyLink removes a link regardless of owner.
func (s *Session) DeleteAnyLink(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/api/admin/links/"+url.PathEscape(id), nil, nil)
}

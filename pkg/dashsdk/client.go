package dashsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient talks to one dashboard instance. It is safe for concurrent use.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login exchanges credentials for a session. Pass the current TOTP code when
// the account has 2FA enabled; without it the error has CodeTwoFactorRequired.
func (c *SDKClient) Login(ctx context.Context, username, password, twoFactorCode string) (*Session, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Username:      username,
		Password:      password,
		TwoFactorCode: twoFactorCode,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &Session{client: c, token: resp.Token, expiresAt: resp.ExpiresAt, user: resp.User}, nil
}

// NewSessionFromToken wraps a token obtained elsewhere. User() stays empty
// until Profile is called.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// PublicLinks lists public links without authenticating.
func (c *SDKClient) PublicLinks(ctx context.Context, category string) ([]Link, error) {
	return c.publicLinks(ctx, "", category)
}

func (c *SDKClient) publicLinks(ctx context.Context, token, category string) ([]Link, error) {
	path := "/api/links/public"
	if category != "" {
		path += "?" + url.Values{"category": {category}}.Encode()
	}
	var resp LinksResponse
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Links, nil
}

func (c *SDKClient) GetLiveness(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", "", nil, &resp)
	return resp, err
}

// GetReadiness returns the health body even when the server reports 503.
func (c *SDKClient) GetReadiness(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", "", nil, &resp)
	return resp, err
}

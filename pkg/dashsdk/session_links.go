package dashsdk

import (
	"context"
	"net/http"
	"net/url"
)

// LinkQuery narrows ListLinks. With a Category, IncludePublic is implied.
type LinkQuery struct {
	Category      string
	IncludePublic bool
}

func (q LinkQuery) encode() string {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.IncludePublic {
		v.Set("includePublic", "true")
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (s *Session) ListLinks(ctx context.Context, q LinkQuery) ([]Link, error) {
	var resp LinksResponse
	if err := s.do(ctx, http.MethodGet, "/api/links"+q.encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Links, nil
}

// PublicLinks lists public links plus the caller's own links in the category.
func (s *Session) PublicLinks(ctx context.Context, category string) ([]Link, error) {
	return s.client.publicLinks(ctx, s.Token(), category)
}

func (s *Session) GetLink(ctx context.Context, id string) (Link, error) {
	var resp LinkResponse
	err := s.do(ctx, http.MethodGet, "/api/links/"+url.PathEscape(id), nil, &resp)
	return resp.Link, err
}

func (s *Session) CreateLink(ctx context.Context, req CreateLinkRequest) (Link, error) {
	var resp LinkResponse
	err := s.do(ctx, http.MethodPost, "/api/links", req, &resp)
	return resp.Link, err
}

func (s *Session) UpdateLink(ctx context.Context, id string, req UpdateLinkRequest) (Link, error) {
	var resp LinkResponse
	err := s.do(ctx, http.MethodPut, "/api/links/"+url.PathEscape(id), req, &resp)
	return resp.Link, err
}

func (s *Session) DeleteLink(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/api/links/"+url.PathEscape(id), nil, nil)
}

// ClickLink records a click and returns the target URL with the new count.
func (s *Session) ClickLink(ctx context.Context, id string) (ClickResponse, error) {
	var resp ClickResponse
	err := s.do(ctx, http.MethodPost, "/api/links/"+url.PathEscape(id)+"/click", nil, &resp)
	return resp, err
}

package http

import (
	"context"
	"net/http"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/pkg/cryptox"
	"github.com/morjahome/dashboard/pkg/dashsdk"
	"github.com/morjahome/dashboard/pkg/httpx"
	"github.com/morjahome/dashboard/pkg/slogx"
)

type accountKey struct{}

func withAccount(ctx context.Context, a domain.Account) context.Context {
	ctx = httpx.WithUser(ctx, a.ID, a.Roles)
	return context.WithValue(ctx, accountKey{}, a)
}

// accountFrom returns the account loaded by authn for this request.
func accountFrom(ctx context.Context) (domain.Account, bool) {
	a, ok := ctx.Value(accountKey{}).(domain.Account)
	return a, ok
}

// authn resolves the bearer token to a live account. The account is re-read
// from the store on every request so deactivation and role changes apply
// immediately.
func (r *Router) authn() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			token, ok := httpx.BearerToken(req)
			if !ok {
				httpx.WriteBearerError(w, "Access token required")
				return
			}

			ctx := req.Context()
			account, err := r.AccessService.Authenticate(ctx, token)
			if err != nil {
				slogx.FromContext(ctx).Debug("bearer rejected", "token_fp", cryptox.Fingerprint(token), "err", err)
				httpx.WriteBearerError(w, "Invalid or inactive user")
				return
			}

			slogx.Annotate(ctx, "user_id", account.ID)
			next.ServeHTTP(w, req.WithContext(withAccount(ctx, account)))
		})
	}
}

// optionalAuthn attaches the caller's account when a valid token is
// presented and otherwise continues anonymously.
func (r *Router) optionalAuthn() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			token, ok := httpx.BearerToken(req)
			if !ok {
				next.ServeHTTP(w, req)
				return
			}

			ctx := req.Context()
			account, err := r.AccessService.Authenticate(ctx, token)
			if err != nil {
				next.ServeHTTP(w, req)
				return
			}

			slogx.Annotate(ctx, "user_id", account.ID)
			next.ServeHTTP(w, req.WithContext(withAccount(ctx, account)))
		})
	}
}

// requireRoles must run after authn. Admin passes every gate.
func requireRoles(roles ...string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			account, ok := accountFrom(req.Context())
			if !ok {
				httpx.WriteBearerError(w, "Access token required")
				return
			}
			if !domain.HasAnyRole(account, roles...) {
				slogx.FromContext(req.Context()).Warn("role check failed",
					"user_id", account.ID, "required", roles)
				httpx.WriteError(w, httpx.NewError(http.StatusForbidden, dashsdk.CodeForbidden, "Insufficient permissions"))
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// mustAccount is used by handlers mounted behind authn.
func mustAccount(w http.ResponseWriter, r *http.Request) (domain.Account, bool) {
	a, ok := accountFrom(r.Context())
	if !ok {
		httpx.WriteBearerError(w, "Access token required")
	}
	return a, ok
}

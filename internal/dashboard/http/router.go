package http

import (
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/morjahome/dashboard/internal/dashboard/domain"
	"github.com/morjahome/dashboard/internal/dashboard/service"
	"github.com/morjahome/dashboard/internal/dashboard/store"
	"github.com/morjahome/dashboard/pkg/httpx"
	"github.com/morjahome/dashboard/pkg/slogx"

	_ "github.com/morjahome/dashboard/api/dashboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	clientIP     httpx.KeyFunc

	AuthService    *service.AuthService
	MFAService     *service.MFAService
	AccessService  *service.AccessService
	LinkService    *service.LinkService
	AccountService *service.AccountService
	StatsService   *service.StatsService
}

// NewRouter builds the router. Forwarding headers are only honoured when the
// socket peer is inside trustedProxies.
func NewRouter(buildVersion, corsOrigin string, trustedProxies []netip.Prefix, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		clientIP:     httpx.ForwardedIP(trustedProxies),
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.SecureHeaders(),
		httpx.CORS(corsOrigin),
		httpx.RateLimitByIP(httpx.GlobalLimit, r.clientIP),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerAuth()
	r.registerDashboard()
	r.registerLinks()
	r.registerAdmin()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/", httpx.NotFoundHandler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			MorjaHome Dashboard API
//	@version		0.1.0
//	@description	Home-lab dashboard: accounts with TOTP two-factor login, role-gated modules and a shared link board.
//	@description
//	@description				Every authenticated route expects an HS256 JWT obtained from /api/auth/login.
//
//	@contact.name				MorjaHome
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with authentication, an optional role gate and the
// per-user rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.Limit, roles ...string) http.Handler {
	mws := []httpx.Middleware{r.authn()}
	if len(roles) > 0 {
		mws = append(mws, requireRoles(roles...))
	}
	mws = append(mws, httpx.RateLimitByUser(limit, r.clientIP))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:    r.AuthService,
		AccountService: r.AccountService,
	}
	mfa := &MFAHandler{MFAService: r.MFAService}

	// Login is keyed by IP + username so one noisy client cannot lock out others.
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, r.clientIP, "username"),
		),
	)
	r.Mux.Handle("POST /api/auth/register", r.secured(h.HandleRegister, httpx.ModerateLimit, domain.RoleAdmin))
	r.Mux.Handle("GET /api/auth/profile", r.secured(h.HandleProfile, httpx.LenientLimit))
	r.Mux.Handle("POST /api/auth/logout", r.secured(h.HandleLogout, httpx.LenientLimit))

	r.Mux.Handle("POST /api/auth/2fa/setup", r.secured(mfa.HandleSetup, httpx.ModerateLimit))
	r.Mux.Handle("POST /api/auth/2fa/enable", r.secured(mfa.HandleEnable, httpx.StrictLimit))
	r.Mux.Handle("POST /api/auth/2fa/disable", r.secured(mfa.HandleDisable, httpx.StrictLimit))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{StatsService: r.StatsService}

	r.Mux.Handle("GET /api/dashboard", r.secured(h.HandleOverview, httpx.LenientLimit))
	r.Mux.Handle("GET /api/dashboard/status", r.secured(h.HandleStatus, httpx.LenientLimit))
}

func (r *Router) registerLinks() {
	h := &LinkHandler{LinkService: r.LinkService}

	r.Mux.Handle("GET /api/links/public",
		httpx.Chain(http.HandlerFunc(h.HandlePublic),
			r.optionalAuthn(),
			httpx.RateLimitByIP(httpx.PublicLimit, r.clientIP),
		),
	)

	r.Mux.Handle("GET /api/links", r.secured(h.HandleList, httpx.LenientLimit, domain.RoleLinks))
	r.Mux.Handle("POST /api/links", r.secured(h.HandleCreate, httpx.ModerateLimit, domain.RoleLinks))
	r.Mux.Handle("GET /api/links/{id}", r.secured(h.HandleGet, httpx.LenientLimit, domain.RoleLinks))
	r.Mux.Handle("PUT /api/links/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, domain.RoleLinks))
	r.Mux.Handle("DELETE /api/links/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit, domain.RoleLinks))
	r.Mux.Handle("POST /api/links/{id}/click", r.secured(h.HandleClick, httpx.LenientLimit, domain.RoleLinks))
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{
		AccountService: r.AccountService,
		LinkService:    r.LinkService,
		StatsService:   r.StatsService,
	}
	admin := func(fn http.HandlerFunc) http.Handler {
		return r.secured(fn, httpx.ModerateLimit, domain.RoleAdmin)
	}

	r.Mux.Handle("GET /api/admin/users", admin(h.HandleListUsers))
	r.Mux.Handle("POST /api/admin/users", admin(h.HandleCreateUser))
	r.Mux.Handle("GET /api/admin/users/{id}", admin(h.HandleGetUser))
	r.Mux.Handle("PUT /api/admin/users/{id}", admin(h.HandleUpdateUser))
	r.Mux.Handle("DELETE /api/admin/users/{id}", admin(h.HandleDeleteUser))
	r.Mux.Handle("POST /api/admin/users/{id}/reset-2fa", admin(h.HandleResetTwoFactor))

	r.Mux.Handle("GET /api/admin/links", admin(h.HandleListLinks))
	r.Mux.Handle("DELETE /api/admin/links/{id}", admin(h.HandleDeleteLink))

	r.Mux.Handle("GET /api/admin/stats", admin(h.HandleStats))
}

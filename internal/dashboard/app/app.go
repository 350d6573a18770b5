package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	httpapi "github.com/morjahome/dashboard/internal/dashboard/http"
	"github.com/morjahome/dashboard/internal/dashboard/service"
	"github.com/morjahome/dashboard/internal/dashboard/store"
	"github.com/morjahome/dashboard/internal/dashboard/store/drivers/bolt"
	"github.com/morjahome/dashboard/internal/dashboard/store/drivers/sqlite"
	"github.com/morjahome/dashboard/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X".
var BuildVersion = "v0.1.0"

// Application owns the dashboard's dependencies and lifecycle.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db        store.Store
	startedAt time.Time

	tokenService     *service.TokenService
	authService      *service.AuthService
	mfaService       *service.MFAService
	accessService    *service.AccessService
	linkService      *service.LinkService
	accountService   *service.AccountService
	statsService     *service.StatsService
	bootstrapService *service.BootstrapService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "morjahome-dashboard",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New validates cfg, opens the store, wires services and routes, and makes
// sure an administrator exists. Config errors abort here.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:       cfg,
		logger:    NewLogger(cfg),
		startedAt: time.Now(),
	}

	warnings, err := app.cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	for _, w := range warnings {
		app.logger.Warn("configuration fallback", "detail", w)
	}

	db, err := OpenStore(app.cfg)
	if err != nil {
		return nil, err
	}
	app.db = db
	app.logger.Info("store ready", "driver", app.cfg.StoreDriver, "path", app.cfg.DataPath)

	if err := app.initServices(); err != nil {
		_ = db.Close()
		return nil, err
	}

	ctx := slogx.WithContext(context.Background(), app.logger)
	if _, err := app.bootstrapService.EnsureAdmin(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	app.initHTTP()
	return app, nil
}

// OpenStore opens the configured driver under cfg.DataPath and applies
// pending migrations.
func OpenStore(cfg Config) (store.Store, error) {
	if err := os.MkdirAll(cfg.DataPath, 0o750); err != nil {
		return nil, fmt.Errorf("create data path: %w", err)
	}

	var (
		db  store.Store
		err error
	)
	switch cfg.StoreDriver {
	case "bolt":
		db, err = bolt.Open(filepath.Join(cfg.DataPath, "dashboard.bolt"))
	case "sqlite":
		db, err = sqlite.NewStore(sqlite.DSN(filepath.Join(cfg.DataPath, "dashboard.db")))
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return db, nil
}

func (app *Application) initServices() error {
	tokens, err := service.NewTokenService([]byte(app.cfg.JWTSecret), app.cfg.JWTIssuer, app.cfg.JWTExpiresIn)
	if err != nil {
		return fmt.Errorf("token service: %w", err)
	}
	app.tokenService = tokens

	app.authService = &service.AuthService{Store: app.db, Tokens: tokens}
	app.mfaService = &service.MFAService{
		Store:       app.db,
		Issuer:      app.cfg.TwoFAIssuer,
		ServiceName: app.cfg.TwoFAServiceName,
	}
	app.accessService = &service.AccessService{Store: app.db, Tokens: tokens}
	app.linkService = &service.LinkService{Store: app.db}
	app.accountService = &service.AccountService{Store: app.db}
	app.statsService = &service.StatsService{Store: app.db, StartedAt: app.startedAt}
	app.bootstrapService = &service.BootstrapService{
		Store:    app.db,
		Username: app.cfg.DefaultAdminUsername,
		Email:    app.cfg.DefaultAdminEmail,
		Password: app.cfg.DefaultAdminPassword,
	}
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.cfg.CORSOrigin, app.cfg.trustedProxies, app.db, app.logger)

	router.AuthService = app.authService
	router.MFAService = app.mfaService
	router.AccessService = app.accessService
	router.LinkService = app.linkService
	router.AccountService = app.accountService
	router.StatsService = app.statsService
	router.ApplyRoutes()

	app.router = router
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// Handler exposes the fully wired router.
func (app *Application) Handler() http.Handler { return app.router }

// Run serves until SIGINT/SIGTERM or a server error.
func (app *Application) Run() error {
	app.logger.Info("dashboard starting", "port", app.cfg.Port, "version", BuildVersion, "env", app.cfg.Env)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests for at most the grace period and
// closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down dashboard...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("dashboard stopped")
	return nil
}

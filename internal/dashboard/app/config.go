package app

import (
	"errors"
	"fmt"
	"net/netip"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/morjahome/dashboard/pkg/httpx"
)

const (
	// development fallbacks, refused in production-like environments
	devJWTSecret     = "morjahome-development-secret-do-not-deploy"
	devAdminPassword = "admin123"

	minSecretBytes = 32
)

var (
	productionEnvs = []string{"production", "prod", "staging"}
	storeDrivers   = []string{"sqlite", "bolt"}
)

type Config struct {
	Env  string `env:"ENV" envDefault:"development"`
	Port int    `env:"PORT" envDefault:"3000"`

	JWTSecret    string        `env:"JWT_SECRET"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`
	JWTIssuer    string        `env:"JWT_ISSUER" envDefault:"morjahome-dashboard"`

	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`

	// Addresses or CIDR ranges of reverse proxies whose X-Forwarded-For is
	// believed. Empty means rate limits key on the socket peer.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
	trustedProxies []netip.Prefix

	TwoFAServiceName string `env:"TWO_FA_SERVICE_NAME" envDefault:"MorjaHome"`
	TwoFAIssuer      string `env:"TWO_FA_ISSUER" envDefault:"MorjaHome Dashboard"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"` // sqlite or bolt
	DataPath    string `env:"DATA_PATH" envDefault:"./data"`

	DefaultAdminUsername string `env:"DEFAULT_ADMIN_USERNAME" envDefault:"admin"`
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASSWORD"`
	DefaultAdminEmail    string `env:"DEFAULT_ADMIN_EMAIL" envDefault:"admin@morjahome.local"`

	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads .env files (missing files are fine) and then the process
// environment. Real environment variables win over .env entries.
func LoadConfig(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// IsProductionLike reports whether development fallbacks are forbidden.
func (c Config) IsProductionLike() bool {
	return slices.Contains(productionEnvs, strings.ToLower(c.Env))
}

// Validate checks c once at startup. Outside production it fills missing
// secrets with development fallbacks and reports each one as a warning; in
// production the same gaps are errors.
func (c *Config) Validate() (warnings []string, err error) {
	var errs []error
	prod := c.IsProductionLike()

	if !slices.Contains(storeDrivers, c.StoreDriver) {
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be one of %v, got %q", storeDrivers, c.StoreDriver))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if prefixes, err := httpx.ParseTrustedProxies(c.TrustedProxies); err != nil {
		errs = append(errs, fmt.Errorf("TRUSTED_PROXIES: %w", err))
	} else {
		c.trustedProxies = prefixes
	}
	if c.JWTExpiresIn <= 0 {
		errs = append(errs, fmt.Errorf("JWT_EXPIRES_IN must be positive, got %s", c.JWTExpiresIn))
	}

	switch {
	case c.JWTSecret == "" && prod:
		errs = append(errs, errors.New("JWT_SECRET is required in "+c.Env))
	case c.JWTSecret == "":
		c.JWTSecret = devJWTSecret
		warnings = append(warnings, "JWT_SECRET not set, using the built-in development secret")
	case len(c.JWTSecret) < minSecretBytes && prod:
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretBytes))
	case len(c.JWTSecret) < minSecretBytes:
		warnings = append(warnings, fmt.Sprintf("JWT_SECRET is shorter than %d bytes", minSecretBytes))
	}

	switch {
	case c.DefaultAdminPassword == "" && prod:
		errs = append(errs, errors.New("DEFAULT_ADMIN_PASSWORD is required in "+c.Env))
	case c.DefaultAdminPassword == "":
		c.DefaultAdminPassword = devAdminPassword
		warnings = append(warnings, "DEFAULT_ADMIN_PASSWORD not set, using the development default")
	}

	return warnings, errors.Join(errs...)
}

package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"ENV", "PORT", "JWT_SECRET", "JWT_EXPIRES_IN", "STORE_DRIVER", "DEFAULT_ADMIN_PASSWORD"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	require.Equal(t, "sqlite", cfg.StoreDriver)
	require.Equal(t, "admin", cfg.DefaultAdminUsername)
	require.Equal(t, "admin@morjahome.local", cfg.DefaultAdminEmail)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigDotEnv(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "CORS_ORIGIN"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("CORS_ORIGIN", "http://dashboard.lan")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=8081\nSTORE_DRIVER=bolt\nCORS_ORIGIN=http://ignored\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("PORT")
		_ = os.Unsetenv("STORE_DRIVER")
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, "bolt", cfg.StoreDriver)
	require.Equal(t, "http://dashboard.lan", cfg.CORSOrigin)
}

func validConfig() Config {
	return Config{
		Env:                  "production",
		Port:                 3000,
		JWTSecret:            "0123456789abcdef0123456789abcdef",
		JWTExpiresIn:         time.Hour,
		StoreDriver:          "sqlite",
		DefaultAdminPassword: "s3cret-admin",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		wantErr  string
		warnings int
	}{
		{name: "valid production", mutate: func(c *Config) {}},
		{name: "production without secret", mutate: func(c *Config) { c.JWTSecret = "" }, wantErr: "JWT_SECRET is required"},
		{name: "production short secret", mutate: func(c *Config) { c.JWTSecret = "short" }, wantErr: "at least 32 bytes"},
		{name: "staging without admin password", mutate: func(c *Config) { c.Env = "staging"; c.DefaultAdminPassword = "" }, wantErr: "DEFAULT_ADMIN_PASSWORD"},
		{name: "unknown driver", mutate: func(c *Config) { c.StoreDriver = "redis" }, wantErr: "STORE_DRIVER"},
		{name: "bad port", mutate: func(c *Config) { c.Port = 0 }, wantErr: "PORT"},
		{name: "bad trusted proxy", mutate: func(c *Config) { c.TrustedProxies = []string{"10.0.0.0/33"} }, wantErr: "TRUSTED_PROXIES"},
		{name: "trusted proxies", mutate: func(c *Config) { c.TrustedProxies = []string{"10.0.0.1", "172.16.0.0/12"} }},
		{name: "development fallbacks", mutate: func(c *Config) {
			c.Env = "development"
			c.JWTSecret = ""
			c.DefaultAdminPassword = ""
		}, warnings: 2},
		{name: "development short secret", mutate: func(c *Config) { c.Env = "development"; c.JWTSecret = "short" }, warnings: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			warnings, err := cfg.Validate()
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, warnings, tt.warnings)
		})
	}
}

func TestValidateAppliesFallbacks(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "development"
	cfg.JWTSecret = ""
	cfg.DefaultAdminPassword = ""

	_, err := cfg.Validate()
	require.NoError(t, err)
	require.Equal(t, devJWTSecret, cfg.JWTSecret)
	require.GreaterOrEqual(t, len(cfg.JWTSecret), minSecretBytes)
	require.Equal(t, devAdminPassword, cfg.DefaultAdminPassword)
}

func TestValidateParsesTrustedProxies(t *testing.T) {
	cfg := validConfig()
	cfg.TrustedProxies = []string{"10.0.0.1", " 172.16.0.0/12 "}

	_, err := cfg.Validate()
	require.NoError(t, err)
	require.Len(t, cfg.trustedProxies, 2)
	require.Equal(t, "10.0.0.1/32", cfg.trustedProxies[0].String())
	require.Equal(t, "172.16.0.0/12", cfg.trustedProxies[1].String())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG_FILE", "HTTP_ADDR", "MAX_BODY_BYTES", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT",
	"DB_DRIVER", "DATABASE_URL", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME", "DB_SEED",
	"RATELIMIT_ENABLED", "RATELIMIT_RPS", "RATELIMIT_BURST", "RATELIMIT_TRUST_FORWARDED",
	"LOG_LEVEL", "LOG_FORMAT", "VERSION", "CORS_ALLOWED_ORIGINS",
}

// clearEnv unsets every key Load reads and runs the test from an empty
// directory so a developer's .env does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.False(t, cfg.Database.Seed)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://app:pw@db:5432/tutorials")
	t.Setenv("DB_SEED", "true")
	t.Setenv("RATELIMIT_RPS", "2.5")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("LOG_FORMAT", "TEXT")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:8081, https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://app:pw@db:5432/tutorials", cfg.Database.URL)
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, []string{"http://localhost:8081", "https://app.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidEnvFallsBackToDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
http:
  addr: ":7000"
  request_timeout: 2s
database:
  max_open_conns: 5
  max_idle_conns: 2
rate_limit:
  enabled: false
version: "1.2.3"
`)
	t.Setenv("CONFIG_FILE", path)
	// Environment wins over the file.
	t.Setenv("VERSION", "1.2.4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 5, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2, cfg.Database.MaxIdleConns)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "1.2.4", cfg.Version)
	// Untouched keys keep their defaults.
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoad_YAMLErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

		_, err := Load()
		assert.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("malformed file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONFIG_FILE", writeFile(t, "bad.yaml", "http: [unclosed"))

		_, err := Load()
		assert.ErrorContains(t, err, "failed to parse config file")
	})
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("HTTP_ADDR=:6060\nVERSION=from-dotenv\n"), 0o600))
	t.Setenv("VERSION", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":6060", cfg.HTTP.Addr)
	assert.Equal(t, "from-env", cfg.Version, "real environment must not be overridden by .env")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "empty addr", mutate: func(c *Config) { c.HTTP.Addr = "" }, wantErr: "HTTP_ADDR"},
		{name: "negative body limit", mutate: func(c *Config) { c.HTTP.MaxBodyBytes = -1 }, wantErr: "MAX_BODY_BYTES"},
		{name: "zero shutdown timeout", mutate: func(c *Config) { c.HTTP.ShutdownTimeout = 0 }, wantErr: "SHUTDOWN_TIMEOUT"},
		{name: "negative request timeout", mutate: func(c *Config) { c.HTTP.RequestTimeout = -time.Second }, wantErr: "REQUEST_TIMEOUT"},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "DB_DRIVER"},
		{name: "postgres without url", mutate: func(c *Config) { c.Database.Driver = "postgres" }, wantErr: "DATABASE_URL"},
		{name: "zero open conns", mutate: func(c *Config) { c.Database.MaxOpenConns = 0 }, wantErr: "DB_MAX_OPEN_CONNS"},
		{name: "idle above open", mutate: func(c *Config) { c.Database.MaxIdleConns = 100 }, wantErr: "DB_MAX_IDLE_CONNS"},
		{name: "zero rps", mutate: func(c *Config) { c.RateLimit.RPS = 0 }, wantErr: "RATELIMIT_RPS"},
		{name: "zero rps when disabled", mutate: func(c *Config) { c.RateLimit.Enabled, c.RateLimit.RPS = false, 0 }},
		{name: "zero burst", mutate: func(c *Config) { c.RateLimit.Burst = 0 }, wantErr: "RATELIMIT_BURST"},
		{name: "bad cors origin", mutate: func(c *Config) { c.CORS.AllowedOrigins = []string{"localhost:8081"} }, wantErr: "CORS_ALLOWED_ORIGINS"},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

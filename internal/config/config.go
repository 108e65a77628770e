// Package config assembles the service configuration.
//
// Values are resolved in order: built-in defaults, the YAML file named by
// CONFIG_FILE, then environment variables (optionally loaded from .env).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	pkgcfg "tutorial-api/pkg/config"
)

// Config holds every setting the API process reads at startup.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Version   string          `yaml:"version"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
	// MaxBodyBytes caps request bodies. Zero disables the limit.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
	// RequestTimeout bounds each request's context. Zero disables it.
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	Seed            bool          `yaml:"seed"`
}

type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
	// TrustForwarded makes the limiter key on X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that sets them.
	TrustForwarded bool `yaml:"trust_forwarded"`
}

// CORSConfig lists browser origins allowed to call the API. Empty disables CORS.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			MaxBodyBytes:    1 << 20,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:          "sqlite",
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     10,
			Burst:   20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Version: "dev",
	}
}

// Load reads .env (if present), the optional CONFIG_FILE overlay and the
// environment, then validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path := pkgcfg.GetEnvString("CONFIG_FILE", ""); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// overlayFile decodes a YAML file on top of c. Keys absent from the file keep their value.
func (c *Config) overlayFile(path string) error {
	// #nosec G304 -- path comes from the operator's environment
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.HTTP.Addr = pkgcfg.GetEnvString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.MaxBodyBytes = pkgcfg.GetEnvInt64("MAX_BODY_BYTES", c.HTTP.MaxBodyBytes)
	c.HTTP.RequestTimeout = pkgcfg.GetEnvDuration("REQUEST_TIMEOUT", c.HTTP.RequestTimeout)
	c.HTTP.ShutdownTimeout = pkgcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)

	c.Database.Driver = strings.ToLower(pkgcfg.GetEnvString("DB_DRIVER", c.Database.Driver))
	c.Database.URL = pkgcfg.GetEnvString("DATABASE_URL", c.Database.URL)
	c.Database.MaxOpenConns = pkgcfg.GetEnvInt("DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns)
	c.Database.MaxIdleConns = pkgcfg.GetEnvInt("DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns)
	c.Database.ConnMaxLifetime = pkgcfg.GetEnvDuration("DB_CONN_MAX_LIFETIME", c.Database.ConnMaxLifetime)
	c.Database.ConnMaxIdleTime = pkgcfg.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", c.Database.ConnMaxIdleTime)
	c.Database.Seed = pkgcfg.GetEnvBool("DB_SEED", c.Database.Seed)

	c.RateLimit.Enabled = pkgcfg.GetEnvBool("RATELIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.RPS = pkgcfg.GetEnvFloat("RATELIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = pkgcfg.GetEnvInt("RATELIMIT_BURST", c.RateLimit.Burst)
	c.RateLimit.TrustForwarded = pkgcfg.GetEnvBool("RATELIMIT_TRUST_FORWARDED", c.RateLimit.TrustForwarded)

	c.Log.Level = pkgcfg.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = strings.ToLower(pkgcfg.GetEnvString("LOG_FORMAT", c.Log.Format))
	c.Version = pkgcfg.GetEnvString("VERSION", c.Version)
	c.CORS.AllowedOrigins = pkgcfg.GetEnvList("CORS_ALLOWED_ORIGINS", c.CORS.AllowedOrigins)
}

// Validate checks configuration correctness.
func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("HTTP_ADDR cannot be empty")
	}
	if c.HTTP.MaxBodyBytes < 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be non-negative")
	}
	if err := pkgcfg.ValidateNonNegativeDuration(c.HTTP.RequestTimeout); err != nil {
		return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
	}
	if err := pkgcfg.ValidatePositiveDuration(c.HTTP.ShutdownTimeout); err != nil {
		return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	switch c.Database.Driver {
	case "sqlite":
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.Database.Driver)
	}
	if err := pkgcfg.ValidateIntRange(c.Database.MaxOpenConns, 1, 1000); err != nil {
		return fmt.Errorf("DB_MAX_OPEN_CONNS: %w", err)
	}
	if err := pkgcfg.ValidateIntRange(c.Database.MaxIdleConns, 0, c.Database.MaxOpenConns); err != nil {
		return fmt.Errorf("DB_MAX_IDLE_CONNS: %w", err)
	}
	if err := pkgcfg.ValidateNonNegativeDuration(c.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("DB_CONN_MAX_LIFETIME: %w", err)
	}
	if err := pkgcfg.ValidateNonNegativeDuration(c.Database.ConnMaxIdleTime); err != nil {
		return fmt.Errorf("DB_CONN_MAX_IDLE_TIME: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			return fmt.Errorf("RATELIMIT_RPS must be positive")
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("RATELIMIT_BURST must be positive")
		}
	}

	if err := pkgcfg.ValidateOrigins(c.CORS.AllowedOrigins); err != nil {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS: %w", err)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format)
	}
	return nil
}

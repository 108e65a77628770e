package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported values for Config.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DefaultSQLiteDSN is an in-memory database shared by every connection in the pool.
const DefaultSQLiteDSN = "file::memory:?cache=shared"

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Config selects the driver and data source for Open.
type Config struct {
	Driver string
	DSN    string
	Pool   ConnectionConfig
}

// driverName maps a configured driver to the name registered with database/sql.
func driverName(driver string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverPostgres, "pgx":
		return "pgx", nil
	case DriverSQLite, "":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// poolFor adjusts pool settings to what the driver can use.
// SQLite allows a single writer, and an in-memory database disappears
// with its last connection, so connections never expire.
func poolFor(driver string, cfg ConnectionConfig) ConnectionConfig {
	if driver != "sqlite" {
		return cfg
	}
	return ConnectionConfig{MaxOpenConns: 1, MaxIdleConns: 1}
}

// Open creates and configures a new database connection pool and verifies it with a ping.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	name, err := driverName(cfg.Driver)
	if err != nil {
		return nil, err
	}
	dsn := cfg.DSN
	if dsn == "" {
		if name != "sqlite" {
			return nil, fmt.Errorf("DATABASE_URL not set for driver %q", cfg.Driver)
		}
		dsn = DefaultSQLiteDSN
	}

	if name == "sqlite" {
		if err := registerFold(); err != nil {
			return nil, fmt.Errorf("register %s: %w", FoldFunc, err)
		}
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	pool := poolFor(name, cfg.Pool)
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.String("driver", name),
		slog.Int("max_open_conns", pool.MaxOpenConns),
		slog.Int("max_idle_conns", pool.MaxIdleConns),
		slog.Duration("conn_max_lifetime", pool.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", pool.ConnMaxIdleTime))

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("database connection established successfully", slog.String("driver", name))
	return db, nil
}

package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
)

//go:embed seeds/tutorials.sql
var seedTutorialsSQL string

var createTutorials = map[string]string{
	"pgx": `
CREATE TABLE IF NOT EXISTS tutorials (
    id          BIGSERIAL PRIMARY KEY,
    title       VARCHAR(255) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    published   BOOLEAN NOT NULL DEFAULT FALSE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	"sqlite": `
CREATE TABLE IF NOT EXISTS tutorials (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    published   BOOLEAN NOT NULL DEFAULT 0,
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
}

// MigrateUp creates the tutorials table and its indexes for the given driver.
// It is safe to run on every start.
func MigrateUp(ctx context.Context, db *sql.DB, driver string) error {
	name, err := driverName(driver)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, createTutorials[name]); err != nil {
		return err
	}

	// ListPublished filters on this column.
	if _, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tutorials_published ON tutorials(published)`); err != nil {
		return err
	}

	if name == "pgx" {
		// pg_trgm speeds up ILIKE title search. Both statements fail without
		// superuser rights or the extension package, which is not fatal.
		_, _ = db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pg_trgm`)
		_, _ = db.ExecContext(ctx,
			`CREATE INDEX IF NOT EXISTS idx_tutorials_title_gin ON tutorials USING gin(title gin_trgm_ops)`)
	}
	return nil
}

// Seed inserts the sample tutorials when the table is empty.
// It reports whether rows were inserted.
func Seed(ctx context.Context, db *sql.DB) (bool, error) {
	var n int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tutorials`).Scan(&n); err != nil {
		return false, fmt.Errorf("count tutorials: %w", err)
	}
	if n > 0 {
		slog.Debug("seed skipped, tutorials table not empty", slog.Int64("rows", n))
		return false, nil
	}
	if _, err := db.ExecContext(ctx, seedTutorialsSQL); err != nil {
		return false, fmt.Errorf("seed tutorials: %w", err)
	}
	return true, nil
}

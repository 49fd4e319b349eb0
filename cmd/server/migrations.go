package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tasklist-api/migrations"
	"github.com/pressly/goose/v3"
)

// ensureSchema applies any pending embedded migrations, creating the
// schema on first run. The operation is idempotent: an up-to-date
// database is left untouched.
func ensureSchema(db *sql.DB, logger *slog.Logger) error {
	migrationLogger := logger.With("component", "migrations")

	start := time.Now()
	migrationLogger.Info("Ensuring database schema")

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	before, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		migrationLogger.Error("Schema migration failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	after, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if before != after {
		migrationLogger.Info("Database schema version changed",
			"previous_version", before,
			"new_version", after,
			"duration_ms", time.Since(start).Milliseconds())
	} else {
		migrationLogger.Info("Database schema up to date",
			"version", after,
			"duration_ms", time.Since(start).Milliseconds())
	}

	return nil
}

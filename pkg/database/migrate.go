package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationsLockKey = "wrstats_migrations_lock"

var errLockNotHeld = errors.New("migrations advisory lock was not held by this session")

// MigrateOptions controls where the migrations are read from.
// An empty Path uses the migrations embedded on the binary.
type MigrateOptions struct {
	Path         string
	DatabaseName string
	Logger       zerolog.Logger
}

// RunMigrations applies all pending migrations to the database.
// Concurrent callers (api and scheduler starting together) wait on the
// advisory lock, so every caller returns only once the schema is up to date.
func RunMigrations(db *sql.DB, opts MigrateOptions) error {
	ctx := context.Background()

	// Session level lock, it must be taken and released on the same connection.
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("could not get a connection for the migrations lock: %w", err)
	}
	defer conn.Close()

	if err := acquireMigrationsLock(ctx, conn); err != nil {
		return err
	}

	upErr := migrateUp(db, opts)
	releaseErr := releaseMigrationsLock(ctx, conn)

	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}
	if releaseErr != nil {
		return releaseErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		opts.Logger.Debug().Msg("No pending migrations")
	} else {
		opts.Logger.Info().Msg("Migrations applied")
	}

	return nil
}

func acquireMigrationsLock(ctx context.Context, conn *sql.Conn) error {
	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock(hashtext($1))", migrationsLockKey); err != nil {
		return fmt.Errorf("could not acquire advisory lock: %w", err)
	}
	return nil
}

func releaseMigrationsLock(ctx context.Context, conn *sql.Conn) error {
	var released bool
	err := conn.QueryRowContext(ctx, "SELECT pg_advisory_unlock(hashtext($1))", migrationsLockKey).Scan(&released)
	if err != nil {
		return fmt.Errorf("could not release advisory lock: %w", err)
	}
	if !released {
		return errLockNotHeld
	}
	return nil
}

func migrateUp(db *sql.DB, opts MigrateOptions) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := newMigrate(driver, opts)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return fmt.Errorf("could not run migrations: %w", err)
	}
	return nil
}

func newMigrate(driver database.Driver, opts MigrateOptions) (*migrate.Migrate, error) {
	dbName := opts.DatabaseName
	if dbName == "" {
		dbName = "wrstats"
	}

	if opts.Path != "" {
		return migrate.NewWithDatabaseInstance("file://"+opts.Path, dbName, driver)
	}

	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, err
	}
	return migrate.NewWithInstance("iofs", src, dbName, driver)
}

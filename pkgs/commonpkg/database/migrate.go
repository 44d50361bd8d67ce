package database

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations
var migrationFS embed.FS

////////////////////////////////////////////////////////////////////////////////

// MigrateUp runs all pending migrations for db's driver
func MigrateUp(db *sqlx.DB) error {
	logger := log.WithFields(log.Fields{
		"caller": "MigrateUp",
		"driver": db.DriverName(),
	})

	m, release, err := newMigrate(db)
	if err != nil {
		return err
	}
	defer release()

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is dirty at migration version %d", currentVersion)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.WithField("version", currentVersion).Debugln("database is already up to date")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	logger.WithFields(log.Fields{
		"from_version": currentVersion,
		"to_version":   newVersion,
	}).Infoln("migration completed")
	return nil
}

// MigrationVersion returns the applied version; ErrNilVersion before any
// migration ran.
func MigrationVersion(db *sqlx.DB) (uint, bool, error) {
	m, release, err := newMigrate(db)
	if err != nil {
		return 0, false, err
	}
	defer release()
	return m.Version()
}

////////////////////////////////////////////////////////////////////////////////

// newMigrate binds a migrate instance to db. release frees what the instance
// holds without closing db.
func newMigrate(db *sqlx.DB) (*migrate.Migrate, func(), error) {
	src, err := iofs.New(migrationFS, "migrations/"+migrationDir(db.DriverName()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open migrations: %w", err)
	}

	var (
		driver  migratedb.Driver
		release func()
	)
	switch db.DriverName() {
	case "postgres":
		// a dedicated conn: closing the driver then leaves the pool open
		ctx := context.Background()
		conn, cerr := db.Conn(ctx)
		if cerr != nil {
			src.Close()
			return nil, nil, fmt.Errorf("failed to reserve migration conn: %w", cerr)
		}
		driver, err = postgres.WithConnection(ctx, conn, &postgres.Config{})
		if err != nil {
			conn.Close()
		}
		release = func() { driver.Close(); src.Close() }
	case "sqlite3":
		// the sqlite driver closes db on Close, so only the source is released
		driver, err = sqlite3.WithInstance(db.DB, &sqlite3.Config{})
		release = func() { src.Close() }
	default:
		src.Close()
		return nil, nil, fmt.Errorf("unsupported database driver: %s", db.DriverName())
	}
	if err != nil {
		src.Close()
		return nil, nil, fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, db.DriverName(), driver)
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, release, nil
}

func migrationDir(driverName string) string {
	if driverName == "sqlite3" {
		return "sqlite"
	}
	return driverName
}

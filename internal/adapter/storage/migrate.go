package storage

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/DelcyVillalba/chic-storefront/migrations"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// MigrateSQLite applies the embedded sqlite migrations to db.
//
// The migrate instance is not closed: closing it would close db.
func MigrateSQLite(db SQLDB) error {
	const op = "MigrateSQLite"
	log := slog.With("op", op)

	if db.Driver() != DriverSQLite {
		return fmt.Errorf("%s: unsupported driver %q", op, db.Driver())
	}

	src, err := iofs.New(migrations.SQLite, "sqlite")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dbDriver, err := sqlite.WithInstance(db.DB, &sqlite.Config{})
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("%s: %w", op, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", dbDriver)
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	log.Info("migration applied")
	return nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
)

type SQLDB struct {
	*sql.DB
	driver string
}

// NewSQLDB opens and pings a database for the postgres or sqlite driver.
func NewSQLDB(ctx context.Context, driver, dsn string) (SQLDB, error) {
	const op = "NewSQLDB"
	log := slog.With("op", op, "driver", driver)

	db, err := open(driver, dsn)
	if err != nil {
		return SQLDB{}, fmt.Errorf("%s: %w", op, err)
	}

	s := SQLDB{DB: db, driver: driver}
	if err := s.PingContext(ctx); err != nil {
		_ = db.Close()
		return SQLDB{}, fmt.Errorf("%s: database is unavailable: %w", op, err)
	}
	log.Info("database is available")
	return s, nil
}

func open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverPostgres:
		connConfig, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, err
		}
		return sql.Open("pgx", stdlib.RegisterConnConfig(connConfig))
	case DriverSQLite:
		return sql.Open("sqlite", dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
}

func (s SQLDB) Driver() string {
	return s.driver
}

func (s SQLDB) Close() {
	const op = "SQLDB.Close"
	log := slog.With("op", op)

	log.Info("closing sql database...")

	if err := s.DB.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("sql database is closed")
}

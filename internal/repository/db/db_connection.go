package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const pingTimeout = 3 * time.Second

// Open opens a store handle for the dialect and fails fast when the database
// cannot be reached. SQLite files are created when missing.
func Open(ctx context.Context, dialect Dialect, dsn string) (*sql.DB, error) {
	conn, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s at %q: %w", dialect, dsn, err)
	}

	if dialect == SQLite {
		if err := tuneSQLite(conn); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}
	return conn, nil
}

func tuneSQLite(conn *sql.DB) error {
	// SQLite is not great with many writers
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			return fmt.Errorf("set %s: %w", pragma, err)
		}
	}
	return nil
}

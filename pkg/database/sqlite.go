package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteDriver is the driver name registered by modernc.org/sqlite.
const SQLiteDriver = "sqlite"

var sqlitePragmas = []string{
	"PRAGMA foreign_keys = ON;",
	"PRAGMA busy_timeout = 5000;",
}

func init() {
	sqlx.BindDriver(SQLiteDriver, sqlx.QUESTION)
}

// OpenSQLite opens an embedded SQLite database. The pool is pinned to one
// connection so that ":memory:" databases survive for the lifetime of the handle.
func OpenSQLite(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(SQLiteDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	for _, pragma := range sqlitePragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

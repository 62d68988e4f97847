package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// DialectFor maps a database/sql driver name onto the goose dialect.
func DialectFor(driver string) (goose.Dialect, error) {
	switch driver {
	case "postgres", "pgx":
		return goose.DialectPostgres, nil
	case SQLiteDriver, "sqlite3":
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Migrate applies every pending embedded migration and returns how many ran.
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect) (int, error) {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return 0, fmt.Errorf("load migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("init migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}
	return len(results), nil
}

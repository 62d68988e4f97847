package database

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is the subset of *sqlx.DB used by repositories.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	Rebind(query string) string
}

// QueryObserver receives the duration of every statement.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

package database

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// LoggedDB decorates a DBTX, timing every statement and optionally logging it.
type LoggedDB struct {
	db         DBTX
	logger     *zap.Logger
	observer   QueryObserver
	logQueries bool
}

// NewLoggedDB wraps db. Statements are logged at debug level only when logQueries is set.
func NewLoggedDB(db DBTX, logger *zap.Logger, observer QueryObserver, logQueries bool) *LoggedDB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggedDB{db: db, logger: logger, observer: observer, logQueries: logQueries}
}

func (l *LoggedDB) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := l.db.GetContext(ctx, dest, query, args...)
	l.record("get", query, start, err)
	return err
}

func (l *LoggedDB) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := l.db.SelectContext(ctx, dest, query, args...)
	l.record("select", query, start, err)
	return err
}

func (l *LoggedDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := l.db.ExecContext(ctx, query, args...)
	l.record("exec", query, start, err)
	return res, err
}

func (l *LoggedDB) NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := l.db.NamedExecContext(ctx, query, arg)
	l.record("named_exec", query, start, err)
	return res, err
}

func (l *LoggedDB) Rebind(query string) string {
	return l.db.Rebind(query)
}

func (l *LoggedDB) record(op, query string, start time.Time, err error) {
	duration := time.Since(start)
	if l.observer != nil {
		l.observer.ObserveDBQuery(op, duration)
	}
	if !l.logQueries {
		return
	}
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("query", query),
		zap.Duration("duration", duration),
	}
	if err != nil && err != sql.ErrNoRows {
		fields = append(fields, zap.Error(err))
	}
	l.logger.Debug("db_query", fields...)
}

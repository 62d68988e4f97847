package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/exercise-api/pkg/config"
)

// Options tunes NewService.
type Options struct {
	Env      string
	Logger   *zap.Logger
	Observer QueryObserver
}

// Service owns the process-wide connection pool and the handle handed to repositories.
type Service struct {
	db     *sqlx.DB
	handle DBTX
	logger *zap.Logger
}

// NewService prepares db for use. Outside production the embedded schema is
// synchronised and every statement is logged; in production neither happens.
func NewService(ctx context.Context, db *sqlx.DB, opts Options) (*Service, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	development := opts.Env != config.EnvProduction

	if development {
		dialect, err := DialectFor(db.DriverName())
		if err != nil {
			return nil, err
		}
		applied, err := Migrate(ctx, db.DB, dialect)
		if err != nil {
			return nil, fmt.Errorf("synchronize schema: %w", err)
		}
		logger.Info("schema synchronized", zap.String("dialect", string(dialect)), zap.Int("applied", applied))
	}

	return &Service{
		db:     db,
		handle: NewLoggedDB(db, logger.Named("db"), opts.Observer, development),
		logger: logger,
	}, nil
}

// Handle returns the DBTX repositories must use.
func (s *Service) Handle() DBTX {
	return s.handle
}

// DB exposes the underlying pool.
func (s *Service) DB() *sqlx.DB {
	return s.db
}

// Ping checks that the database is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the pool.
func (s *Service) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.logger.Info("closing database pool")
	return s.db.Close()
}

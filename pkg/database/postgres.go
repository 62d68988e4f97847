package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/noah-isme/exercise-api/pkg/config"
)

const defaultRetryDelay = 3 * time.Second

// connect is swapped in tests.
var connect = NewPostgres

// NewPostgres returns a configured PostgreSQL client after a single ping.
func NewPostgres(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Open connects to PostgreSQL, retrying up to cfg.RetryAttempts times after the
// first failure with a constant cfg.RetryDelay between attempts.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	retries := cfg.RetryAttempts
	if retries < 0 {
		retries = 0
	}

	var (
		db      *sqlx.DB
		attempt int
	)
	backoff := retry.WithMaxRetries(uint64(retries), retry.NewConstant(delay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		conn, err := connect(ctx, cfg)
		if err != nil {
			logger.Warn("database connection failed",
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", retries+1),
				zap.String("host", cfg.Host),
				zap.Error(err),
			)
			return retry.RetryableError(err)
		}
		db = conn
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect database after %d attempts: %w", attempt, err)
	}

	logger.Info("database connected", zap.String("host", cfg.Host), zap.String("name", cfg.Name), zap.Int("attempts", attempt))
	return db, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/exercise-api/internal/app"
	"github.com/noah-isme/exercise-api/internal/service"
	"github.com/noah-isme/exercise-api/pkg/cache"
	"github.com/noah-isme/exercise-api/pkg/config"
	"github.com/noah-isme/exercise-api/pkg/database"
	"github.com/noah-isme/exercise-api/pkg/logger"
)

// @title Exercise API
// @version 1.0.0
// @description Users, networks, memberships, exercises and groups
// @BasePath /
// @schemes http

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to PostgreSQL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context())
		},
	}

	root := &cobra.Command{
		Use:           "exercise-api",
		Short:         "Exercise network API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve, migrate)
	return root
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, logr, nil
}

func runServe(parent context.Context) error {
	cfg, logr, err := bootstrap()
	if err != nil {
		return err
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.Open(ctx, cfg.Database, logr.Named("db"))
	if err != nil {
		logr.Error("database unavailable", zap.Error(err))
		return err
	}

	metrics := service.NewMetricsService(cfg.App.Name)
	db, err := database.NewService(ctx, pool, database.Options{Env: cfg.App.Env, Logger: logr, Observer: metrics})
	if err != nil {
		_ = pool.Close()
		return err
	}

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	}

	application := app.New(app.Dependencies{
		Config:   cfg,
		Logger:   logr,
		Database: db,
		Metrics:  metrics,
		Redis:    redisClient,
	})
	defer func() {
		if err := application.Close(); err != nil {
			logr.Warn("shutdown cleanup failed", zap.Error(err))
		}
	}()

	return application.Serve(ctx)
}

func runMigrate(parent context.Context) error {
	cfg, logr, err := bootstrap()
	if err != nil {
		return err
	}
	defer logr.Sync() //nolint:errcheck

	pool, err := database.Open(parent, cfg.Database, logr.Named("db"))
	if err != nil {
		return err
	}
	defer pool.Close()

	dialect, err := database.DialectFor(pool.DriverName())
	if err != nil {
		return err
	}
	applied, err := database.Migrate(parent, pool.DB, dialect)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logr.Info("migrations applied", zap.Int("count", applied))
	return nil
}

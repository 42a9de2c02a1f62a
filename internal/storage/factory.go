package storage

import (
	"context"
	"fmt"

	"smartcash/internal/repository"
	"smartcash/pkg/config"
	"smartcash/pkg/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Result bundles the selected backend with whatever infrastructure it
// brought up. Users is nil on the local backend (no accounts offline).
type Result struct {
	Store   Store
	Users   *repository.UserRepository
	Pool    *pgxpool.Pool
	Local   *LocalStore
	Cleanup func()
}

// New selects and initializes the transaction backend from configuration.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Result, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		return newPostgresBackend(ctx, cfg, logger)
	case config.BackendLocal:
		return newLocalBackend(cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}

func newPostgresBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Result, error) {
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	txRepo := repository.NewTransactionRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)

	logger.Info("Initialized Postgres backend", zap.String("database", cfg.Database.DBName))

	return &Result{
		Store:   NewPostgresStore(txRepo),
		Users:   userRepo,
		Pool:    pool,
		Cleanup: pool.Close,
	}, nil
}

func newLocalBackend(cfg *config.Config, logger *zap.Logger) (*Result, error) {
	store, err := NewLocalStore(cfg.Storage.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("local store: %w", err)
	}

	logger.Info("Initialized local backend (offline/demo mode)",
		zap.String("data_dir", cfg.Storage.DataDir))

	return &Result{
		Store:   store,
		Local:   store,
		Cleanup: func() {},
	}, nil
}

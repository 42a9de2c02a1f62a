package storage

import (
	"context"
	"errors"

	"smartcash/internal/models"
	"smartcash/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PostgresStore adapts the transaction repository to the Store contract,
// translating the identity into the row-level scope.
type PostgresStore struct {
	repo *repository.TransactionRepository
}

func NewPostgresStore(repo *repository.TransactionRepository) *PostgresStore {
	return &PostgresStore{repo: repo}
}

func (s *PostgresStore) List(ctx context.Context, ident models.Identity) ([]models.Transaction, error) {
	return s.repo.List(ctx, ident.OwnerID())
}

func (s *PostgresStore) Insert(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	return s.repo.Insert(ctx, tx)
}

func (s *PostgresStore) Delete(ctx context.Context, ident models.Identity, id uuid.UUID) error {
	err := s.repo.Delete(ctx, ident.OwnerID(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

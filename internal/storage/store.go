package storage

import (
	"context"
	"errors"

	"smartcash/internal/models"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("transaction not found")

// Store is the persistence contract for transactions. Two interchangeable
// implementations exist: the Postgres repository (remote mode) and the
// local file store (offline/demo mode). Insert returns the stored row,
// which is the source of truth for server-assigned fields. Delete is
// scoped by the identity: users reach only their own rows, admins reach
// everything, and a miss is reported as ErrNotFound.
type Store interface {
	List(ctx context.Context, ident models.Identity) ([]models.Transaction, error)
	Insert(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	Delete(ctx context.Context, ident models.Identity, id uuid.UUID) error
}

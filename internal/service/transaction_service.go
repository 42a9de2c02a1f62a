package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartcash/internal/dto"
	"smartcash/internal/memcache"
	"smartcash/internal/models"
	"smartcash/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrValidation = errors.New("validation failed")

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

type TransactionService struct {
	store  storage.Store
	cache  *memcache.TransactionList
	logger *zap.Logger
}

func NewTransactionService(store storage.Store, cache *memcache.TransactionList, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// List fetches the scoped transaction list from the backend and swaps it
// into the dashboard cache (whole-list replacement, last writer wins).
func (s *TransactionService) List(ctx context.Context, ident models.Identity) ([]models.Transaction, error) {
	txs, err := s.store.List(ctx, ident)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	s.cache.Replace(ident.CacheKey(), txs)
	return txs, nil
}

// ListCached serves the dashboard read path: the cached list when it was
// filled for this identity, otherwise a backend read that refreshes the
// cache. Stats and insights tolerate the cache being a step behind.
func (s *TransactionService) ListCached(ctx context.Context, ident models.Identity) ([]models.Transaction, error) {
	if txs, ok := s.cache.Snapshot(ident.CacheKey()); ok {
		return txs, nil
	}
	return s.List(ctx, ident)
}

// Add validates the entry, applies the entry-form rules (income is always
// recorded under Renda, tags are deduplicated) and inserts it. The stored
// row returned by the backend is prepended to the cache.
func (s *TransactionService) Add(ctx context.Context, ident models.Identity, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	tx, err := buildTransaction(ident, req)
	if err != nil {
		return nil, err
	}

	stored, err := s.store.Insert(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	s.cache.Prepend(ident.CacheKey(), *stored)
	s.logger.Info("Transaction created",
		zap.String("id", stored.ID.String()),
		zap.String("type", string(stored.Type)),
		zap.String("category", string(stored.Category)),
	)

	return stored, nil
}

// Delete removes the transaction from the backend first and only then
// from the cache, so a failed remote delete leaves both sides consistent.
// The backend scopes the delete to the caller's own rows (admins may
// delete any row) and reports storage.ErrNotFound for an unknown or
// unowned id.
func (s *TransactionService) Delete(ctx context.Context, ident models.Identity, id uuid.UUID) error {
	if err := s.store.Delete(ctx, ident, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete transaction: %w", err)
	}

	s.cache.Remove(id)
	return nil
}

func buildTransaction(ident models.Identity, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, validationError("Por favor, dê uma descrição.")
	}

	if req.Amount <= 0 {
		return nil, validationError("Valor inválido.")
	}

	txType := models.TransactionType(req.Type)
	if !txType.Valid() {
		return nil, validationError("Tipo inválido.")
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, validationError("Data inválida.")
	}

	category := models.Category(req.Category)
	if txType == models.TypeIncome {
		// Income is always recorded under Renda, whatever was selected.
		category = models.CategoryRenda
	} else {
		if category == "" {
			category = models.CategoryOutros
		}
		if !category.Valid() || category == models.CategoryRenda {
			return nil, validationError("Categoria inválida.")
		}
	}

	tx := &models.Transaction{
		UserID:        ident.OwnerID(),
		UserEmail:     ident.Email,
		Description:   description,
		Amount:        req.Amount,
		Date:          date,
		Category:      category,
		Type:          txType,
		Notes:         strings.TrimSpace(req.Notes),
		Location:      strings.TrimSpace(req.Location),
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		Tags:          dedupeTags(req.Tags),
	}

	return tx, nil
}

// dedupeTags trims tags and suppresses duplicates, keeping entry order.
func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

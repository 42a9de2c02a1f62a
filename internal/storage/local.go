package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"smartcash/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	transactionsFile = "transactions.json"
	sessionFile      = "session.json"
)

// LocalSession is the mock session slot for local-login mode.
type LocalSession struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LocalStore is the offline/demo fallback: the whole transaction list
// lives in a single JSON file slot, rewritten on every change
// (last-write-wins, no versioning). Ids are assigned locally on insert.
type LocalStore struct {
	mu      sync.Mutex
	dataDir string
	logger  *zap.Logger
}

func NewLocalStore(dataDir string, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{
		dataDir: dataDir,
		logger:  logger,
	}, nil
}

func (s *LocalStore) List(ctx context.Context, ident models.Identity) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	// A logged-in user only sees rows attributed to their email; guest
	// and admin reads return the whole list.
	filtered := all
	if ident.Kind == models.IdentityUser {
		filtered = filtered[:0:0]
		for _, tx := range all {
			if tx.UserEmail == ident.Email {
				filtered = append(filtered, tx)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})

	return filtered, nil
}

func (s *LocalStore) Insert(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	stored := *tx
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}

	all = append([]models.Transaction{stored}, all...)
	if err := s.save(all); err != nil {
		return nil, err
	}

	return &stored, nil
}

// Delete removes one row. A logged-in user reaches only rows attributed
// to their email; guest and admin deletes are unscoped. An unknown or
// unowned id reports ErrNotFound.
func (s *LocalStore) Delete(ctx context.Context, ident models.Identity, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}

	kept := all[:0:0]
	for _, tx := range all {
		if tx.ID == id && (ident.Kind != models.IdentityUser || tx.UserEmail == ident.Email) {
			continue
		}
		kept = append(kept, tx)
	}
	if len(kept) == len(all) {
		return ErrNotFound
	}

	return s.save(kept)
}

// SaveSession writes the mock session slot used by local-login mode.
func (s *LocalStore) SaveSession(sess *LocalSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dataDir, sessionFile), data, 0o644)
}

// LoadSession reads the mock session slot, returning nil when absent.
func (s *LocalStore) LoadSession() (*LocalSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dataDir, sessionFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess LocalSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *LocalStore) load() ([]models.Transaction, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, transactionsFile))
	if os.IsNotExist(err) {
		return []models.Transaction{}, nil
	}
	if err != nil {
		return nil, err
	}

	var all []models.Transaction
	if err := json.Unmarshal(data, &all); err != nil {
		s.logger.Warn("Local transaction slot is corrupt, starting empty", zap.Error(err))
		return []models.Transaction{}, nil
	}
	return all, nil
}

func (s *LocalStore) save(all []models.Transaction) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dataDir, transactionsFile), data, 0o644)
}

package memcache

import (
	"sync"

	"smartcash/internal/models"

	"github.com/google/uuid"
)

// TransactionList is the single shared mutable state of the dashboard: a
// mutex-guarded transaction list mutated only through whole-list
// replacement, prepend, or removal. Concurrent completions race freely
// and the last state-setting call wins.
//
// The list is tagged with the scope key of the identity that filled it.
// Reads for any other scope miss, so one caller's rows are never served
// to another.
type TransactionList struct {
	mu     sync.Mutex
	scope  string
	filled bool
	txs    []models.Transaction
}

func NewTransactionList() *TransactionList {
	return &TransactionList{txs: []models.Transaction{}}
}

// Replace swaps in a freshly fetched list and retags the scope.
func (l *TransactionList) Replace(scope string, txs []models.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.scope = scope
	l.filled = true
	l.txs = append([]models.Transaction{}, txs...)
}

// Prepend puts a newly created transaction at the head of the list. A
// write from a different scope is dropped, the next Replace for that
// scope will carry the row.
func (l *TransactionList) Prepend(scope string, tx models.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.filled || l.scope != scope {
		return
	}
	l.txs = append([]models.Transaction{tx}, l.txs...)
}

// Remove filters out the transaction with the given id. Removing an
// unknown id leaves the list unchanged.
func (l *TransactionList) Remove(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := make([]models.Transaction, 0, len(l.txs))
	for _, tx := range l.txs {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	l.txs = kept
}

// Snapshot returns a copy of the current list when it was filled for the
// given scope; readers never observe a partially applied update. The
// second return reports a hit.
func (l *TransactionList) Snapshot(scope string) ([]models.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.filled || l.scope != scope {
		return nil, false
	}
	return append([]models.Transaction{}, l.txs...), true
}

func (l *TransactionList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.txs)
}

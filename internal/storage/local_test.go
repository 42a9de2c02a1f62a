package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"smartcash/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	return store
}

func TestLocalStoreInsertAssignsID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tx := &models.Transaction{Description: "Aluguel", Amount: 1500, Date: "2024-05-10", Category: models.CategoryMoradia, Type: models.TypeExpense}
	stored, err := store.Insert(ctx, tx)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if stored.ID == uuid.Nil {
		t.Error("local insert must assign an id")
	}

	all, err := store.List(ctx, models.Guest())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 || all[0].ID != stored.ID {
		t.Errorf("stored row not listed back: %+v", all)
	}
}

func TestLocalStoreDeleteUnknownID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.Insert(ctx, &models.Transaction{Description: "x", Amount: 1, Date: "2024-05-01", Category: models.CategoryOutros, Type: models.TypeExpense}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	if err := store.Delete(ctx, models.Guest(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete error = %v, want ErrNotFound", err)
	}

	all, err := store.List(ctx, models.Guest())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("list length = %d after deleting unknown id, want 3", len(all))
	}
}

func TestLocalStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	stored, err := store.Insert(ctx, &models.Transaction{Description: "x", Amount: 1, Date: "2024-05-01", Category: models.CategoryOutros, Type: models.TypeExpense})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := store.Delete(ctx, models.Guest(), stored.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	all, err := store.List(ctx, models.Guest())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("list length = %d after delete, want 0", len(all))
	}
}

// A logged-in user must not reach another user's rows through delete;
// the row survives and the miss is reported.
func TestLocalStoreDeleteScopedToOwner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	theirs, err := store.Insert(ctx, &models.Transaction{Description: "theirs", Amount: 2, Date: "2024-05-02", Category: models.CategoryOutros, Type: models.TypeExpense, UserEmail: "b@example.com"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	userA := models.Identity{Kind: models.IdentityUser, Email: "a@example.com"}
	if err := store.Delete(ctx, userA, theirs.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete error = %v, want ErrNotFound", err)
	}

	all, err := store.List(ctx, models.Guest())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("row deleted across user scope, list length = %d, want 1", len(all))
	}

	// The owner can delete it.
	userB := models.Identity{Kind: models.IdentityUser, Email: "b@example.com"}
	if err := store.Delete(ctx, userB, theirs.ID); err != nil {
		t.Fatalf("owner Delete: %v", err)
	}
}

func TestLocalStoreUserScope(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rows := []models.Transaction{
		{Description: "mine", Amount: 1, Date: "2024-05-01", Category: models.CategoryOutros, Type: models.TypeExpense, UserEmail: "a@example.com"},
		{Description: "theirs", Amount: 2, Date: "2024-05-02", Category: models.CategoryOutros, Type: models.TypeExpense, UserEmail: "b@example.com"},
		{Description: "nobody's", Amount: 3, Date: "2024-05-03", Category: models.CategoryOutros, Type: models.TypeExpense},
	}
	for i := range rows {
		if _, err := store.Insert(ctx, &rows[i]); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	user := models.Identity{Kind: models.IdentityUser, Email: "a@example.com"}
	mine, err := store.List(ctx, user)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(mine) != 1 || mine[0].Description != "mine" {
		t.Errorf("user scope returned %+v, want only the a@example.com row", mine)
	}

	// Guest and admin reads see the whole slot
	all, err := store.List(ctx, models.Guest())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("guest list length = %d, want 3", len(all))
	}
}

func TestLocalStoreListOrdersByDateDescending(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	dates := []string{"2024-05-10", "2024-05-18", "2024-05-05"}
	for _, date := range dates {
		if _, err := store.Insert(ctx, &models.Transaction{Description: "x", Amount: 1, Date: date, Category: models.CategoryOutros, Type: models.TypeExpense}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	all, err := store.List(ctx, models.Guest())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"2024-05-18", "2024-05-10", "2024-05-05"}
	for i, date := range want {
		if all[i].Date != date {
			t.Errorf("position %d: date = %s, want %s", i, all[i].Date, date)
		}
	}
}

func TestLocalStoreCorruptSlotStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, transactionsFile), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	store, err := NewLocalStore(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	all, err := store.List(context.Background(), models.Guest())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("corrupt slot produced %d rows, want 0", len(all))
	}
}

func TestLocalStoreSessionSlot(t *testing.T) {
	store := newTestStore(t)

	missing, err := store.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if missing != nil {
		t.Errorf("empty slot returned %+v, want nil", missing)
	}

	sess := &LocalSession{Email: "demo@example.com", Username: "demo"}
	if err := store.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	loaded, err := store.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if loaded == nil || loaded.Email != sess.Email || loaded.Username != sess.Username {
		t.Errorf("loaded session = %+v, want %+v", loaded, sess)
	}
}

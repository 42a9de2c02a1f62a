package memcache

import (
	"sync"
	"testing"

	"smartcash/internal/models"

	"github.com/google/uuid"
)

const testScope = "user:test"

func sampleList(n int) []models.Transaction {
	txs := make([]models.Transaction, n)
	for i := range txs {
		txs[i] = models.Transaction{ID: uuid.New(), Description: "tx", Amount: 1}
	}
	return txs
}

func TestSnapshotMissesBeforeFirstFill(t *testing.T) {
	list := NewTransactionList()

	if _, ok := list.Snapshot(testScope); ok {
		t.Error("empty cache reported a hit")
	}
}

func TestSnapshotMissesForOtherScope(t *testing.T) {
	list := NewTransactionList()
	list.Replace("user:a", sampleList(3))

	if _, ok := list.Snapshot("user:b"); ok {
		t.Error("cache filled for user:a served user:b")
	}
	if _, ok := list.Snapshot("user:a"); !ok {
		t.Error("cache missed its own scope")
	}
}

func TestReplaceRetagsScope(t *testing.T) {
	list := NewTransactionList()
	list.Replace("user:a", sampleList(2))
	list.Replace("admin", sampleList(5))

	if _, ok := list.Snapshot("user:a"); ok {
		t.Error("stale scope still hits after retag")
	}
	snapshot, ok := list.Snapshot("admin")
	if !ok || len(snapshot) != 5 {
		t.Errorf("admin snapshot = %d rows, hit=%v, want 5 rows", len(snapshot), ok)
	}
}

func TestPrependFromOtherScopeIsDropped(t *testing.T) {
	list := NewTransactionList()
	list.Replace("user:a", sampleList(2))

	list.Prepend("user:b", models.Transaction{ID: uuid.New(), Description: "foreign"})

	snapshot, _ := list.Snapshot("user:a")
	if len(snapshot) != 2 {
		t.Errorf("list length = %d after foreign prepend, want 2", len(snapshot))
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	list := NewTransactionList()
	list.Replace(testScope, sampleList(3))

	list.Remove(uuid.New())

	if got := list.Len(); got != 3 {
		t.Errorf("list length = %d after removing unknown id, want 3", got)
	}
}

func TestRemove(t *testing.T) {
	list := NewTransactionList()
	txs := sampleList(3)
	list.Replace(testScope, txs)

	list.Remove(txs[1].ID)

	snapshot, ok := list.Snapshot(testScope)
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if len(snapshot) != 2 {
		t.Fatalf("list length = %d, want 2", len(snapshot))
	}
	for _, tx := range snapshot {
		if tx.ID == txs[1].ID {
			t.Error("removed transaction still present")
		}
	}
}

func TestPrepend(t *testing.T) {
	list := NewTransactionList()
	list.Replace(testScope, sampleList(2))

	newest := models.Transaction{ID: uuid.New(), Description: "newest"}
	list.Prepend(testScope, newest)

	snapshot, _ := list.Snapshot(testScope)
	if snapshot[0].ID != newest.ID {
		t.Errorf("prepended transaction is not at the head")
	}
	if len(snapshot) != 3 {
		t.Errorf("list length = %d, want 3", len(snapshot))
	}
}

func TestSnapshotIsolation(t *testing.T) {
	list := NewTransactionList()
	list.Replace(testScope, sampleList(1))

	snapshot, _ := list.Snapshot(testScope)
	snapshot[0].Description = "mutated"

	fresh, _ := list.Snapshot(testScope)
	if fresh[0].Description == "mutated" {
		t.Error("snapshot mutation leaked into the list")
	}
}

// Concurrent whole-list replacements must leave one complete list in
// place: last writer wins, never a partial mix.
func TestReplaceLastWriterWins(t *testing.T) {
	list := NewTransactionList()

	const writers = 8
	lists := make([][]models.Transaction, writers)
	for i := range lists {
		lists[i] = sampleList(i + 1)
	}

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			list.Replace(testScope, lists[i])
		}(i)
	}
	wg.Wait()

	final, ok := list.Snapshot(testScope)
	if !ok {
		t.Fatal("expected a cache hit")
	}
	matched := false
	for _, candidate := range lists {
		if len(candidate) != len(final) {
			continue
		}
		same := true
		for j := range candidate {
			if candidate[j].ID != final[j].ID {
				same = false
				break
			}
		}
		if same {
			matched = true
			break
		}
	}
	if !matched {
		t.Error("final list is not any writer's complete list")
	}
}

package testsupport

import (
	"context"
	"testing"

	"prodbook/internal/config"
	"prodbook/internal/ledger"
)

// MustOpenStore opens a ledger.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *ledger.Store {
	t.Helper()

	store, err := ledger.Open(cfg)
	if err != nil {
		t.Fatalf("ledger.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewEntry inserts an entry for tests and returns it with its assigned id.
func NewEntry(t testing.TB, store *ledger.Store, entry ledger.Entry) ledger.Entry {
	t.Helper()

	id, err := store.Insert(context.Background(), entry)
	if err != nil {
		t.Fatalf("store.Insert: %v", err)
	}
	entry.ID = id
	return entry
}

//go:build !sqlite

package storage

import "testing"

func TestNewStoreSQLiteUnavailableWithoutTag(t *testing.T) {
	if _, err := NewStore(KindSQLite, "brains.db"); err == nil {
		t.Fatal("expected sqlite backend to be unavailable")
	}
	if kind := DefaultStoreKind(); kind != KindMemory {
		t.Fatalf("expected memory default, got %s", kind)
	}
}

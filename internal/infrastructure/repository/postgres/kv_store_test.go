package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/scout-schedule/internal/platform/kv"
)

func TestKVStoreRejectsEmptyKeyBeforeQuerying(t *testing.T) {
	store := NewKVStore(nil)
	ctx := context.Background()

	if _, _, err := store.Get(ctx, "  "); !errors.Is(err, kv.ErrEmptyKey) {
		t.Fatalf("Get: expected ErrEmptyKey, got %v", err)
	}
	if err := store.Put(ctx, "", []byte("x")); !errors.Is(err, kv.ErrEmptyKey) {
		t.Fatalf("Put: expected ErrEmptyKey, got %v", err)
	}
	if err := store.Delete(ctx, ""); !errors.Is(err, kv.ErrEmptyKey) {
		t.Fatalf("Delete: expected ErrEmptyKey, got %v", err)
	}
}

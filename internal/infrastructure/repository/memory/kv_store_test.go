package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/scout-schedule/internal/platform/kv"
)

func TestKVStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewKVStore()

	if _, found, err := store.Get(ctx, "tba-api-key"); err != nil || found {
		t.Fatalf("expected absent key, found=%v err=%v", found, err)
	}

	value := []byte("secret")
	if err := store.Put(ctx, "tba-api-key", value); err != nil {
		t.Fatalf("put: %v", err)
	}
	value[0] = 'X'

	got, found, err := store.Get(ctx, "tba-api-key")
	if err != nil || !found {
		t.Fatalf("expected stored key, found=%v err=%v", found, err)
	}
	if string(got) != "secret" {
		t.Fatalf("stored value aliased caller buffer: %q", got)
	}

	if err := store.Delete(ctx, "tba-api-key"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := store.Get(ctx, "tba-api-key"); found {
		t.Fatalf("expected key removed")
	}
	if err := store.Delete(ctx, "tba-api-key"); err != nil {
		t.Fatalf("deleting absent key should be a no-op: %v", err)
	}
}

func TestKVStore_EmptyKey(t *testing.T) {
	t.Parallel()

	if err := NewKVStore().Put(context.Background(), " ", nil); !errors.Is(err, kv.ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
}

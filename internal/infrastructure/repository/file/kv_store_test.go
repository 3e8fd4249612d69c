package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/scout-schedule/internal/platform/kv"
)

func TestKVStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewKVStore(filepath.Join(t.TempDir(), "nested", "data"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, found, err := store.Get(ctx, "schedule:2024casj"); err != nil || found {
		t.Fatalf("expected absent key, found=%v err=%v", found, err)
	}

	if err := store.Put(ctx, "schedule:2024casj", []byte(`{"schedule":[]}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "schedule:2024casj", []byte(`{"schedule":[1]}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, found, err := store.Get(ctx, "schedule:2024casj")
	if err != nil || !found {
		t.Fatalf("expected key, found=%v err=%v", found, err)
	}
	if string(got) != `{"schedule":[1]}` {
		t.Fatalf("unexpected value %q", got)
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one file and no temp leftovers, got %d", len(entries))
	}

	if err := store.Delete(ctx, "schedule:2024casj"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "schedule:2024casj"); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
	if _, found, _ := store.Get(ctx, "schedule:2024casj"); found {
		t.Fatalf("expected key removed")
	}
}

func TestKVStore_KeysAreIsolated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewKVStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Put(ctx, "../escape", []byte("x")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, found, _ := store.Get(ctx, "../escape"); !found {
		t.Fatalf("expected escaped key to round trip")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(store.Dir()), "escape.json")); !os.IsNotExist(err) {
		t.Fatalf("key escaped the data directory")
	}

	if _, _, err := store.Get(ctx, ""); !errors.Is(err, kv.ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
}

package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scout-schedule/internal/platform/kv"
	qb "github.com/riskibarqy/scout-schedule/internal/platform/querybuilder"
)

// KVTable holds every persisted entry when STORAGE_DRIVER=postgres.
const KVTable = "kv_entries"

const kvUpsertSuffix = "ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at"

// KVStore keeps entries in a single kv_entries table, created by
// db/migrations/000001_create_kv_entries.
type KVStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewKVStore(db *sqlx.DB) *KVStore {
	return &KVStore{db: db, now: time.Now}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, kv.ErrEmptyKey
	}

	query, args, err := qb.Select("key", "value", "updated_at").
		From(KVTable).
		Where(qb.Eq("key", key)).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, false, fmt.Errorf("build select kv entry query: %w", err)
	}

	var row kvEntryTableModel
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select kv entry %s: %w", key, err)
	}
	return []byte(row.Value), true, nil
}

func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return kv.ErrEmptyKey
	}

	query, args, err := qb.InsertModel(KVTable, kvEntryTableModel{
		Key:       key,
		Value:     string(value),
		UpdatedAt: s.now().UTC(),
	}, kvUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert kv entry query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert kv entry %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return kv.ErrEmptyKey
	}

	query, args, err := qb.DeleteFrom(KVTable).Where(qb.Eq("key", key)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete kv entry query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete kv entry %s: %w", key, err)
	}
	return nil
}

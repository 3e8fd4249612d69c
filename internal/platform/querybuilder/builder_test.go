package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("key", "value").
		From("kv_entries").
		Where(Eq("key", "schedule:2024casj")).
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT key, value FROM kv_entries WHERE key = $1 LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "schedule:2024casj" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Key       string    `db:"key"`
		Value     string    `db:"value"`
		UpdatedAt time.Time `db:"updated_at"`
		Ignored   string    `db:"-"`
		hidden    string
	}
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	query, args, err := InsertModel("kv_entries", row{Key: "k", Value: "v", UpdatedAt: at, hidden: "x"},
		"ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, $3) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "k" || args[1] != "v" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModel("t", (*row)(nil), ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("kv_entries").Where(Eq("key", "tba-api-key")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM kv_entries WHERE key = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "tba-api-key" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("kv_entries").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditioned delete")
	}
}

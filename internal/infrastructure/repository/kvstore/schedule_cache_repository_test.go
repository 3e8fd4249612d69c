package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
	"github.com/riskibarqy/scout-schedule/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleCacheRepository_PutGetAlsoWritesHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewKVStore()
	history := NewScheduleHistoryRepository(store, 0, nil)
	repo := NewScheduleCacheRepository(store, history, nil)
	repo.now = func() time.Time { return time.UnixMilli(1710000000000) }

	entries := []schedule.Entry{{MatchNumber: 1, MatchKey: "2024casj_qm1", Red1: "254", Red2: "—", Red3: "—", Blue1: "—", Blue2: "—", Blue3: "—"}}
	require.NoError(t, repo.Put(ctx, "2024casj", entries, "SVR"))

	got, found, err := repo.Get(ctx, "2024casj")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entries, got.Entries)
	assert.Equal(t, int64(1710000000000), got.Timestamp.UnixMilli())

	records, err := history.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "SVR", records[0].EventName)

	raw, _, _ := store.Get(ctx, "schedule:2024casj")
	assert.JSONEq(t, `{"schedule":[{"matchNumber":1,"matchKey":"2024casj_qm1","red1":"254","red2":"—","red3":"—","blue1":"—","blue2":"—","blue3":"—"}],"timestamp":1710000000000}`, string(raw))
}

func TestScheduleCacheRepository_PutReplacesWholesale(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScheduleCacheRepository(memory.NewKVStore(), nil, nil)

	require.NoError(t, repo.Put(ctx, "e", []schedule.Entry{{MatchNumber: 1}, {MatchNumber: 2}}, ""))
	require.NoError(t, repo.Put(ctx, "e", []schedule.Entry{{MatchNumber: 3}}, ""))

	got, found, err := repo.Get(ctx, "e")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, 3, got.Entries[0].MatchNumber)
}

func TestScheduleCacheRepository_CorruptIsAbsent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewKVStore()
	repo := NewScheduleCacheRepository(store, nil, nil)

	for _, raw := range []string{`garbage`, `{"timestamp":1}`, `[]`} {
		require.NoError(t, store.Put(ctx, "schedule:2024casj", []byte(raw)))
		_, found, err := repo.Get(ctx, "2024casj")
		require.NoError(t, err, raw)
		assert.False(t, found, raw)
	}
}

func TestScheduleCacheRepository_ClearKeepsHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewKVStore()
	history := NewScheduleHistoryRepository(store, 0, nil)
	repo := NewScheduleCacheRepository(store, history, nil)

	require.NoError(t, repo.Put(ctx, "2024casj", nil, ""))
	require.NoError(t, repo.Clear(ctx, "2024casj"))

	_, found, err := repo.Get(ctx, "2024casj")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = history.Get(ctx, "2024casj")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCredentialRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCredentialRepository(memory.NewKVStore())

	_, found, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Save(ctx, " key-123 "))
	key, found, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "key-123", key)

	require.NoError(t, repo.Clear(ctx))
	_, found, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

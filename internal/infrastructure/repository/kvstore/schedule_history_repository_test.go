package kvstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
	"github.com/riskibarqy/scout-schedule/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) (*ScheduleHistoryRepository, *memory.KVStore) {
	t.Helper()

	store := memory.NewKVStore()
	repo := NewScheduleHistoryRepository(store, 0, nil)
	clock := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return repo, store
}

func eventIDs(records []schedule.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.EventID)
	}
	return out
}

func TestScheduleHistoryRepository_UpsertDedupMovesToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestHistory(t)

	require.NoError(t, repo.Upsert(ctx, "2024casj", nil, ""))
	require.NoError(t, repo.Upsert(ctx, "2024txhou", nil, "Houston"))
	require.NoError(t, repo.Upsert(ctx, "2024casj", []schedule.Entry{{MatchNumber: 1}}, "SVR"))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024txhou", "2024casj"}, eventIDs(records))
	assert.Equal(t, "SVR", records[1].EventName)
	assert.Len(t, records[1].Entries, 1)
	assert.True(t, records[1].Timestamp.After(records[0].Timestamp))
}

func TestScheduleHistoryRepository_EvictsOldestBeyondCapacity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestHistory(t)

	for i := 1; i <= 21; i++ {
		require.NoError(t, repo.Upsert(ctx, fmt.Sprintf("2024ev%02d", i), nil, ""))
	}

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, DefaultHistoryCapacity)
	assert.Equal(t, "2024ev02", records[0].EventID)
	assert.Equal(t, "2024ev21", records[len(records)-1].EventID)

	_, found, err := repo.Get(ctx, "2024ev01")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestScheduleHistoryRepository_ReupsertSurvivesEviction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewKVStore()
	repo := NewScheduleHistoryRepository(store, 3, nil)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Upsert(ctx, id, nil, ""))
	}
	require.NoError(t, repo.Upsert(ctx, "a", nil, ""))
	require.NoError(t, repo.Upsert(ctx, "d", nil, ""))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "d"}, eventIDs(records))
}

func TestScheduleHistoryRepository_CorruptReadsAsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, store := newTestHistory(t)

	for _, raw := range []string{`{not json`, `{"eventId":"x"}`, `[{"schedule":[]}]`} {
		require.NoError(t, store.Put(ctx, scheduleHistoryKey, []byte(raw)))

		records, err := repo.List(ctx)
		require.NoError(t, err, raw)
		assert.Empty(t, records, raw)
	}

	require.NoError(t, repo.Upsert(ctx, "2024casj", nil, ""))
	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024casj"}, eventIDs(records), "a corrupt log self-heals on the next write")
}

func TestScheduleHistoryRepository_PersistedShape(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, store := newTestHistory(t)
	repo.now = func() time.Time { return time.UnixMilli(1710000000000) }

	require.NoError(t, repo.Upsert(ctx, "2024casj", []schedule.Entry{{
		MatchNumber: 5, MatchKey: "2024casj_qm5",
		Red1: "111", Red2: "222", Red3: "333", Blue1: "444", Blue2: "555", Blue3: schedule.UnknownTeam,
	}}, ""))

	raw, found, err := store.Get(ctx, scheduleHistoryKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{
		"eventId": "2024casj",
		"timestamp": 1710000000000,
		"schedule": [{"matchNumber":5,"matchKey":"2024casj_qm5","red1":"111","red2":"222","red3":"333","blue1":"444","blue2":"555","blue3":"—"}]
	}]`, string(raw))
}

func TestScheduleHistoryRepository_Remove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestHistory(t)

	require.NoError(t, repo.Upsert(ctx, "a", nil, ""))
	require.NoError(t, repo.Upsert(ctx, "b", nil, ""))
	require.NoError(t, repo.Remove(ctx, "a"))
	require.NoError(t, repo.Remove(ctx, "missing"))

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, eventIDs(records))
}

func TestScheduleHistoryRepository_FindMatchAcrossEvents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestHistory(t)

	unresolved := schedule.Entry{MatchNumber: 12, Red1: schedule.UnknownTeam, Blue1: "1678"}
	resolved := schedule.Entry{MatchNumber: 12, Red1: "254", Blue1: "971"}
	require.NoError(t, repo.Upsert(ctx, "eventA", []schedule.Entry{{MatchNumber: 11, Red1: "9"}, unresolved}, ""))
	require.NoError(t, repo.Upsert(ctx, "eventB", []schedule.Entry{resolved}, ""))

	record, entry, ok, err := repo.FindMatch(ctx, 12, schedule.SlotRed1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "eventB", record.EventID)
	assert.Equal(t, "254", entry.Red1)

	record, _, ok, err = repo.FindMatch(ctx, 12, schedule.SlotBlue1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "eventA", record.EventID, "first found in log order wins")

	_, _, ok, err = repo.FindMatch(ctx, 99, schedule.SlotRed1)
	require.NoError(t, err)
	assert.False(t, ok)
}

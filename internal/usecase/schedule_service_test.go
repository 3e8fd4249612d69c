package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
	schedulemock "github.com/riskibarqy/scout-schedule/internal/mocks/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestScheduleService(t *testing.T, provider *fakeAllianceData, apiKey string) (*ScheduleService, *schedulemock.CacheRepository, *schedulemock.HistoryRepository) {
	t.Helper()

	cacheRepo := schedulemock.NewCacheRepository(t)
	historyRepo := schedulemock.NewHistoryRepository(t)
	credentials := NewCredentialService(&staticCredential{key: apiKey}, nil)
	service := NewScheduleService(provider, cacheRepo, historyRepo, credentials, nil)
	service.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	return service, cacheRepo, historyRepo
}

func TestScheduleService_Load_CacheMissFetchesAndStores(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &fakeAllianceData{
		matches: []schedule.RawMatch{
			{Key: "2024casj_sf1m1", CompLevel: "sf", MatchNumber: 1},
			{Key: "2024casj_qm2", CompLevel: "qm", MatchNumber: 2, RedTeamKeys: []string{"frc254"}},
			{Key: "2024casj_qm1", CompLevel: "qm", MatchNumber: 1, BlueTeamKeys: []string{"frc1678"}},
		},
		event: ExternalEvent{Key: "2024casj", Name: "Silicon Valley Regional"},
	}
	service, cacheRepo, _ := newTestScheduleService(t, provider, "key-123")

	cacheRepo.On("Get", ctx, "2024casj").Return(schedule.Record{}, false, nil).Once()
	cacheRepo.
		On("Put", ctx, "2024casj", mock.MatchedBy(func(entries []schedule.Entry) bool {
			return len(entries) == 2 && entries[0].MatchNumber == 1 && entries[1].Red1 == "254"
		}), "Silicon Valley Regional").
		Return(nil).
		Once()

	got, err := service.Load(ctx, " 2024CASJ ")
	require.NoError(t, err)
	assert.False(t, got.FromCache)
	assert.Equal(t, "2024casj", got.Record.EventID)
	assert.Equal(t, "Silicon Valley Regional", got.Record.EventName)
	assert.Len(t, got.Record.Entries, 2)
	assert.Equal(t, "1678", got.Record.Entries[0].Blue1)
	assert.Equal(t, int32(1), provider.matchCalls.Load())
	assert.Equal(t, "key-123", provider.lastAPIKey)
}

func TestScheduleService_Load_CacheHitUpsertsHistoryWithoutFetching(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &fakeAllianceData{}
	service, cacheRepo, historyRepo := newTestScheduleService(t, provider, "key-123")

	cached := schedule.Record{
		EventID:   "2024casj",
		Timestamp: time.Date(2026, 3, 13, 8, 0, 0, 0, time.UTC),
		Entries:   []schedule.Entry{{MatchNumber: 1, MatchKey: "2024casj_qm1"}},
	}
	cacheRepo.On("Get", ctx, "2024casj").Return(cached, true, nil).Once()
	historyRepo.On("Get", ctx, "2024casj").Return(schedule.Record{EventID: "2024casj", EventName: "SVR"}, true, nil).Once()
	historyRepo.On("Upsert", ctx, "2024casj", cached.Entries, "SVR").Return(nil).Once()

	got, err := service.Load(ctx, "2024casj")
	require.NoError(t, err)
	assert.True(t, got.FromCache)
	assert.Equal(t, "SVR", got.Record.EventName)
	assert.Equal(t, int32(0), provider.matchCalls.Load())
}

func TestScheduleService_Load_MissingCredentialSkipsNetwork(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &fakeAllianceData{}
	service, cacheRepo, _ := newTestScheduleService(t, provider, "")

	cacheRepo.On("Get", ctx, "2024casj").Return(schedule.Record{}, false, nil).Once()

	_, err := service.Load(ctx, "2024casj")
	var missing *MissingCredentialError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, int32(0), provider.matchCalls.Load())
	assert.Equal(t, "Set your Blue Alliance API key before loading a schedule.", UserMessage(err))
}

func TestScheduleService_Load_RemoteErrorSurfaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &fakeAllianceData{matchesErr: &RemoteError{Op: "fetch matches", Status: 404}}
	service, cacheRepo, _ := newTestScheduleService(t, provider, "key-123")

	cacheRepo.On("Get", ctx, "2024zzzz").Return(schedule.Record{}, false, nil).Once()

	_, err := service.Load(ctx, "2024zzzz")
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, 404, remote.Status)
}

func TestScheduleService_Load_StorageFailuresAreAbsorbed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &fakeAllianceData{
		matches:  []schedule.RawMatch{{Key: "2024casj_qm1", CompLevel: "qm", MatchNumber: 1}},
		eventErr: errors.New("event lookup failed"),
	}
	service, cacheRepo, _ := newTestScheduleService(t, provider, "key-123")

	cacheRepo.On("Get", ctx, "2024casj").Return(schedule.Record{}, false, errors.New("disk on fire")).Once()
	cacheRepo.On("Put", ctx, "2024casj", mock.Anything, "").Return(errors.New("disk still on fire")).Once()

	got, err := service.Load(ctx, "2024casj")
	require.NoError(t, err)
	assert.Len(t, got.Record.Entries, 1)
	assert.Empty(t, got.Record.EventName)
}

func TestScheduleService_Load_InvalidEventID(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestScheduleService(t, &fakeAllianceData{}, "key")
	for _, bad := range []string{"", "   ", "2024/casj", "a b"} {
		_, err := service.Load(context.Background(), bad)
		assert.ErrorIs(t, err, ErrInvalidInput, bad)
	}
}

func TestScheduleService_LoadFromHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &fakeAllianceData{}
	service, _, historyRepo := newTestScheduleService(t, provider, "")

	stored := schedule.Record{EventID: "2023txhou", EventName: "Houston", Entries: []schedule.Entry{{MatchNumber: 4}}}
	historyRepo.On("Get", ctx, "2023txhou").Return(stored, true, nil).Once()
	historyRepo.On("Upsert", ctx, "2023txhou", stored.Entries, "Houston").Return(nil).Once()
	historyRepo.On("Get", ctx, "2023nope").Return(schedule.Record{}, false, nil).Once()

	got, err := service.LoadFromHistory(ctx, "2023txhou")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Equal(t, int32(0), provider.matchCalls.Load())

	_, err = service.LoadFromHistory(ctx, "2023nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleService_HistoryAndRemoval(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, cacheRepo, historyRepo := newTestScheduleService(t, &fakeAllianceData{}, "")

	historyRepo.On("List", ctx).Return(nil, errors.New("corrupt")).Once()
	assert.Empty(t, service.History(ctx))

	historyRepo.On("Remove", ctx, "2024casj").Return(nil).Once()
	require.NoError(t, service.RemoveFromHistory(ctx, "2024casj"))

	cacheRepo.On("Clear", ctx, "2024casj").Return(nil).Once()
	require.NoError(t, service.ClearCache(ctx, "2024CASJ"))
}

func TestScheduleService_Refresh_BypassesCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &fakeAllianceData{matches: []schedule.RawMatch{{Key: "2024casj_qm1", CompLevel: "qm", MatchNumber: 1}}}
	service, cacheRepo, _ := newTestScheduleService(t, provider, "key")

	cacheRepo.On("Put", ctx, "2024casj", mock.Anything, "").Return(nil).Once()

	got, err := service.Refresh(ctx, "2024casj")
	require.NoError(t, err)
	assert.Len(t, got.Entries, 1)
	assert.Equal(t, int32(1), provider.matchCalls.Load())
	cacheRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

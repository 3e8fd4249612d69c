package kvstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
	"github.com/riskibarqy/scout-schedule/internal/platform/kv"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
)

// ScheduleCacheRepository holds the latest schedule per event. Every Put is
// mirrored into the history log.
type ScheduleCacheRepository struct {
	store   kv.Store
	history *ScheduleHistoryRepository
	logger  *logging.Logger
	now     func() time.Time
}

func NewScheduleCacheRepository(store kv.Store, history *ScheduleHistoryRepository, logger *logging.Logger) *ScheduleCacheRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleCacheRepository{
		store:   store,
		history: history,
		logger:  logger,
		now:     time.Now,
	}
}

func (r *ScheduleCacheRepository) Get(ctx context.Context, eventID string) (schedule.Record, bool, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return schedule.Record{}, false, nil
	}

	doc, found, err := readJSON(ctx, r.store, r.logger, scheduleCacheKey(eventID), validateCachedSchedule)
	if err != nil {
		return schedule.Record{}, false, fmt.Errorf("read schedule cache: %w", err)
	}
	if !found {
		return schedule.Record{}, false, nil
	}

	return schedule.Record{
		EventID:   eventID,
		Timestamp: time.UnixMilli(doc.Timestamp),
		Entries:   toEntries(doc.Schedule),
	}, true, nil
}

func (r *ScheduleCacheRepository) Put(ctx context.Context, eventID string, entries []schedule.Entry, eventName string) error {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return fmt.Errorf("put schedule cache: event id is required")
	}

	doc := cachedScheduleModel{
		Schedule:  toEntryModels(entries),
		Timestamp: r.now().UnixMilli(),
	}
	if err := writeJSON(ctx, r.store, scheduleCacheKey(eventID), doc); err != nil {
		return fmt.Errorf("write schedule cache: %w", err)
	}

	if r.history == nil {
		return nil
	}
	return r.history.Upsert(ctx, eventID, entries, eventName)
}

// Clear removes the cached schedule only; its history record stays.
func (r *ScheduleCacheRepository) Clear(ctx context.Context, eventID string) error {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil
	}
	if err := r.store.Delete(ctx, scheduleCacheKey(eventID)); err != nil {
		return fmt.Errorf("clear schedule cache: %w", err)
	}
	return nil
}

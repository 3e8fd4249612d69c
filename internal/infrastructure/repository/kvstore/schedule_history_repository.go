package kvstore

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
	"github.com/riskibarqy/scout-schedule/internal/platform/kv"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
)

const DefaultHistoryCapacity = 20

// ScheduleHistoryRepository stores the history log as one JSON array, oldest
// first, rewritten whole on every change.
type ScheduleHistoryRepository struct {
	store    kv.Store
	capacity int
	logger   *logging.Logger
	now      func() time.Time

	// mu serializes read-modify-write within this process only.
	mu sync.Mutex
}

func NewScheduleHistoryRepository(store kv.Store, capacity int, logger *logging.Logger) *ScheduleHistoryRepository {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleHistoryRepository{
		store:    store,
		capacity: capacity,
		logger:   logger,
		now:      time.Now,
	}
}

// Upsert drops any record for eventID, appends a fresh one and keeps only the
// newest capacity records.
func (r *ScheduleHistoryRepository) Upsert(ctx context.Context, eventID string, entries []schedule.Entry, eventName string) error {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return fmt.Errorf("upsert schedule history: event id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.EventID != eventID {
			kept = append(kept, rec)
		}
	}
	kept = append(kept, historyRecordModel{
		EventID:   eventID,
		EventName: strings.TrimSpace(eventName),
		Timestamp: r.now().UnixMilli(),
		Schedule:  toEntryModels(entries),
	})
	if len(kept) > r.capacity {
		kept = kept[len(kept)-r.capacity:]
	}

	return r.save(ctx, kept)
}

func (r *ScheduleHistoryRepository) List(ctx context.Context) ([]schedule.Record, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]schedule.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *ScheduleHistoryRepository) Get(ctx context.Context, eventID string) (schedule.Record, bool, error) {
	records, err := r.load(ctx)
	if err != nil {
		return schedule.Record{}, false, err
	}
	for _, rec := range records {
		if rec.EventID == eventID {
			return rec.toDomain(), true, nil
		}
	}
	return schedule.Record{}, false, nil
}

func (r *ScheduleHistoryRepository) Remove(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.EventID != eventID {
			kept = append(kept, rec)
		}
	}
	return r.save(ctx, kept)
}

// FindMatch returns the first record, in log order, whose entry for
// matchNumber has a known team in slot. Records where that slot is unknown
// are skipped so a later event can still answer.
func (r *ScheduleHistoryRepository) FindMatch(ctx context.Context, matchNumber int, slot schedule.Slot) (schedule.Record, schedule.Entry, bool, error) {
	records, err := r.List(ctx)
	if err != nil {
		return schedule.Record{}, schedule.Entry{}, false, err
	}

	for _, rec := range records {
		for _, entry := range rec.Entries {
			if entry.MatchNumber != matchNumber {
				continue
			}
			if team := entry.Team(slot); team != "" && team != schedule.UnknownTeam {
				return rec, entry, true, nil
			}
		}
	}
	return schedule.Record{}, schedule.Entry{}, false, nil
}

func (r *ScheduleHistoryRepository) load(ctx context.Context) ([]historyRecordModel, error) {
	records, _, err := readJSON(ctx, r.store, r.logger, scheduleHistoryKey, validateHistory)
	if err != nil {
		return nil, fmt.Errorf("read schedule history: %w", err)
	}
	return records, nil
}

func (r *ScheduleHistoryRepository) save(ctx context.Context, records []historyRecordModel) error {
	if records == nil {
		records = []historyRecordModel{}
	}
	if err := writeJSON(ctx, r.store, scheduleHistoryKey, records); err != nil {
		return fmt.Errorf("write schedule history: %w", err)
	}
	return nil
}

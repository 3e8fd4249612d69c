package schedule

import "context"

// CacheRepository keeps the latest normalized schedule per event.
type CacheRepository interface {
	Get(ctx context.Context, eventID string) (Record, bool, error)
	// Put replaces the cached schedule and upserts the history log.
	Put(ctx context.Context, eventID string, entries []Entry, eventName string) error
	Clear(ctx context.Context, eventID string) error
}

// HistoryRepository is the bounded, deduplicated log of fetched schedules.
type HistoryRepository interface {
	Upsert(ctx context.Context, eventID string, entries []Entry, eventName string) error
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, eventID string) (Record, bool, error)
	Remove(ctx context.Context, eventID string) error
	FindMatch(ctx context.Context, matchNumber int, slot Slot) (Record, Entry, bool, error)
}

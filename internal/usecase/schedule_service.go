package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
)

type ScheduleResult struct {
	Record    schedule.Record
	FromCache bool
}

// ScheduleService loads event schedules, cache first, and keeps the history
// log in step with every schedule the scout looks at.
type ScheduleService struct {
	provider    ScheduleProvider
	cacheRepo   schedule.CacheRepository
	historyRepo schedule.HistoryRepository
	credentials *CredentialService
	logger      *logging.Logger
	now         func() time.Time
}

func NewScheduleService(
	provider ScheduleProvider,
	cacheRepo schedule.CacheRepository,
	historyRepo schedule.HistoryRepository,
	credentials *CredentialService,
	logger *logging.Logger,
) *ScheduleService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ScheduleService{
		provider:    provider,
		cacheRepo:   cacheRepo,
		historyRepo: historyRepo,
		credentials: credentials,
		logger:      logger,
		now:         time.Now,
	}
}

// Load returns the cached schedule when present, otherwise fetches it. A cache
// hit still moves the event to the most recent history position.
func (s *ScheduleService) Load(ctx context.Context, eventID string) (ScheduleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Load")
	defer span.End()

	eventID, err := normalizeEventID(eventID)
	if err != nil {
		return ScheduleResult{}, err
	}

	cached, ok, err := s.cacheRepo.Get(ctx, eventID)
	if err != nil {
		s.logger.WarnContext(ctx, "read schedule cache failed, fetching instead", "event_id", eventID, "error", err)
		ok = false
	}
	if ok {
		cached.EventName = s.knownEventName(ctx, eventID)
		s.upsertHistory(ctx, eventID, cached.Entries, cached.EventName)
		return ScheduleResult{Record: cached, FromCache: true}, nil
	}

	record, err := s.fetch(ctx, eventID)
	if err != nil {
		return ScheduleResult{}, err
	}
	return ScheduleResult{Record: record}, nil
}

// Refresh bypasses the cache and replaces it with a fresh fetch.
func (s *ScheduleService) Refresh(ctx context.Context, eventID string) (schedule.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Refresh")
	defer span.End()

	eventID, err := normalizeEventID(eventID)
	if err != nil {
		return schedule.Record{}, err
	}
	return s.fetch(ctx, eventID)
}

func (s *ScheduleService) fetch(ctx context.Context, eventID string) (schedule.Record, error) {
	apiKey, err := s.credentials.Require(ctx, "load schedule")
	if err != nil {
		return schedule.Record{}, err
	}

	raw, err := s.provider.FetchMatches(ctx, eventID, apiKey)
	if err != nil {
		return schedule.Record{}, fmt.Errorf("fetch matches event=%s: %w", eventID, err)
	}

	entries := schedule.Normalize(raw)
	eventName := s.fetchEventName(ctx, eventID, apiKey)

	if err := s.cacheRepo.Put(ctx, eventID, entries, eventName); err != nil {
		s.logger.WarnContext(ctx, "store schedule failed", "event_id", eventID, "error", err)
	}

	s.logger.InfoContext(ctx, "schedule fetched",
		"event_id", eventID,
		"raw_matches", len(raw),
		"qualification_matches", len(entries),
	)

	return schedule.Record{
		EventID:   eventID,
		EventName: eventName,
		Timestamp: s.now(),
		Entries:   entries,
	}, nil
}

// ClearCache drops the cached schedule for one event; history is untouched.
func (s *ScheduleService) ClearCache(ctx context.Context, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ClearCache")
	defer span.End()

	eventID, err := normalizeEventID(eventID)
	if err != nil {
		return err
	}
	if err := s.cacheRepo.Clear(ctx, eventID); err != nil {
		return fmt.Errorf("clear schedule cache event=%s: %w", eventID, err)
	}
	return nil
}

// History lists stored schedules oldest first. Storage failures yield an empty list.
func (s *ScheduleService) History(ctx context.Context) []schedule.Record {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.History")
	defer span.End()

	records, err := s.historyRepo.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "list schedule history failed", "error", err)
		return []schedule.Record{}
	}
	return records
}

// LoadFromHistory returns a stored schedule without touching the network and
// bumps it to the most recent history position.
func (s *ScheduleService) LoadFromHistory(ctx context.Context, eventID string) (schedule.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.LoadFromHistory")
	defer span.End()

	eventID, err := normalizeEventID(eventID)
	if err != nil {
		return schedule.Record{}, err
	}

	record, ok, err := s.historyRepo.Get(ctx, eventID)
	if err != nil {
		s.logger.WarnContext(ctx, "read schedule history failed", "event_id", eventID, "error", err)
		ok = false
	}
	if !ok {
		return schedule.Record{}, fmt.Errorf("%w: event %s is not in schedule history", ErrNotFound, eventID)
	}

	s.upsertHistory(ctx, eventID, record.Entries, record.EventName)
	return record, nil
}

func (s *ScheduleService) RemoveFromHistory(ctx context.Context, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.RemoveFromHistory")
	defer span.End()

	eventID, err := normalizeEventID(eventID)
	if err != nil {
		return err
	}
	if err := s.historyRepo.Remove(ctx, eventID); err != nil {
		return fmt.Errorf("remove schedule history event=%s: %w", eventID, err)
	}
	return nil
}

func (s *ScheduleService) upsertHistory(ctx context.Context, eventID string, entries []schedule.Entry, eventName string) {
	if err := s.historyRepo.Upsert(ctx, eventID, entries, eventName); err != nil {
		s.logger.WarnContext(ctx, "upsert schedule history failed", "event_id", eventID, "error", err)
	}
}

func (s *ScheduleService) knownEventName(ctx context.Context, eventID string) string {
	record, ok, err := s.historyRepo.Get(ctx, eventID)
	if err != nil || !ok {
		return ""
	}
	return record.EventName
}

// fetchEventName is best effort; a schedule without a name is still usable.
func (s *ScheduleService) fetchEventName(ctx context.Context, eventID, apiKey string) string {
	event, err := s.provider.FetchEvent(ctx, eventID, apiKey)
	if err != nil {
		s.logger.DebugContext(ctx, "fetch event name failed", "event_id", eventID, "error", err)
		return ""
	}
	return strings.TrimSpace(event.Name)
}

// normalizeEventID lowercases event keys such as "2024CASJ".
func normalizeEventID(raw string) (string, error) {
	eventID := strings.ToLower(strings.TrimSpace(raw))
	if eventID == "" {
		return "", fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if strings.ContainsAny(eventID, "/?#% ") {
		return "", fmt.Errorf("%w: event id %q contains invalid characters", ErrInvalidInput, raw)
	}
	return eventID, nil
}

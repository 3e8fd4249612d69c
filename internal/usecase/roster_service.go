package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
)

// RosterAssignment is the team found in a slot and where it was found.
type RosterAssignment struct {
	Team        string
	Slot        schedule.Slot
	MatchNumber int
	MatchKey    string
	EventID     string
	EventName   string
}

// RosterService answers "who is in slot X of match N" from the schedule
// history, across events.
type RosterService struct {
	historyRepo schedule.HistoryRepository
	logger      *logging.Logger
}

func NewRosterService(historyRepo schedule.HistoryRepository, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterService{historyRepo: historyRepo, logger: logger}
}

// Resolve returns the bare team number for the slot, or false when no stored
// schedule has a known team there.
func (s *RosterService) Resolve(ctx context.Context, matchNumber int, slotCode string) (string, bool, error) {
	assignment, ok, err := s.Lookup(ctx, matchNumber, slotCode)
	if err != nil || !ok {
		return "", ok, err
	}
	return assignment.Team, true, nil
}

// Lookup is Resolve with the originating event and match attached.
func (s *RosterService) Lookup(ctx context.Context, matchNumber int, slotCode string) (RosterAssignment, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Lookup")
	defer span.End()

	if matchNumber < 1 {
		return RosterAssignment{}, false, fmt.Errorf("%w: match number must be at least 1", ErrInvalidInput)
	}
	slot, err := schedule.ParseSlot(slotCode)
	if err != nil {
		return RosterAssignment{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	record, entry, ok, err := s.historyRepo.FindMatch(ctx, matchNumber, slot)
	if err != nil {
		s.logger.WarnContext(ctx, "scan schedule history failed", "match_number", matchNumber, "slot", slot, "error", err)
		return RosterAssignment{}, false, nil
	}
	if !ok {
		return RosterAssignment{}, false, nil
	}

	return RosterAssignment{
		Team:        entry.Team(slot),
		Slot:        slot,
		MatchNumber: entry.MatchNumber,
		MatchKey:    entry.MatchKey,
		EventID:     record.EventID,
		EventName:   record.EventName,
	}, true, nil
}

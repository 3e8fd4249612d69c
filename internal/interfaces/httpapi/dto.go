package httpapi

import (
	"time"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
	"github.com/riskibarqy/scout-schedule/internal/domain/team"
	"github.com/riskibarqy/scout-schedule/internal/usecase"
)

type scheduleEntryDTO struct {
	MatchNumber int    `json:"match_number"`
	MatchKey    string `json:"match_key"`
	Red1        string `json:"red1"`
	Red2        string `json:"red2"`
	Red3        string `json:"red3"`
	Blue1       string `json:"blue1"`
	Blue2       string `json:"blue2"`
	Blue3       string `json:"blue3"`
}

type scheduleDTO struct {
	EventID   string             `json:"event_id"`
	EventName string             `json:"event_name,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	FromCache bool               `json:"from_cache"`
	Matches   []scheduleEntryDTO `json:"matches"`
}

type scheduleHistoryItemDTO struct {
	EventID    string    `json:"event_id"`
	EventName  string    `json:"event_name,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	MatchCount int       `json:"match_count"`
}

type rosterSlotDTO struct {
	Team        string `json:"team"`
	Slot        string `json:"slot"`
	SlotLabel   string `json:"slot_label"`
	MatchNumber int    `json:"match_number"`
	MatchKey    string `json:"match_key"`
	EventID     string `json:"event_id"`
	EventName   string `json:"event_name,omitempty"`
}

type teamDTO struct {
	Number      int    `json:"number"`
	DisplayName string `json:"display_name"`
	Logo        string `json:"logo"`
}

type prefetchResultDTO struct {
	Requested int `json:"requested"`
	Resolved  int `json:"resolved"`
}

type saveCredentialRequest struct {
	APIKey string `json:"api_key" validate:"required,max=256"`
}

type prefetchTeamsRequest struct {
	TeamNumbers []int `json:"team_numbers" validate:"required,min=1,max=500,dive,gt=0"`
}

func toScheduleDTO(record schedule.Record, fromCache bool) scheduleDTO {
	matches := make([]scheduleEntryDTO, 0, len(record.Entries))
	for _, entry := range record.Entries {
		matches = append(matches, scheduleEntryDTO{
			MatchNumber: entry.MatchNumber,
			MatchKey:    entry.MatchKey,
			Red1:        entry.Red1,
			Red2:        entry.Red2,
			Red3:        entry.Red3,
			Blue1:       entry.Blue1,
			Blue2:       entry.Blue2,
			Blue3:       entry.Blue3,
		})
	}

	return scheduleDTO{
		EventID:   record.EventID,
		EventName: record.EventName,
		Timestamp: record.Timestamp.UTC(),
		FromCache: fromCache,
		Matches:   matches,
	}
}

func toScheduleHistoryDTOs(records []schedule.Record) []scheduleHistoryItemDTO {
	out := make([]scheduleHistoryItemDTO, 0, len(records))
	for _, record := range records {
		out = append(out, scheduleHistoryItemDTO{
			EventID:    record.EventID,
			EventName:  record.EventName,
			Timestamp:  record.Timestamp.UTC(),
			MatchCount: len(record.Entries),
		})
	}
	return out
}

func toRosterSlotDTO(item usecase.RosterAssignment) rosterSlotDTO {
	return rosterSlotDTO{
		Team:        item.Team,
		Slot:        item.Slot.String(),
		SlotLabel:   item.Slot.Label(),
		MatchNumber: item.MatchNumber,
		MatchKey:    item.MatchKey,
		EventID:     item.EventID,
		EventName:   item.EventName,
	}
}

func toTeamDTO(identity team.Identity) teamDTO {
	return teamDTO{
		Number:      identity.Number,
		DisplayName: identity.DisplayName,
		Logo:        identity.Logo,
	}
}

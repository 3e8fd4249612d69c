package kvstore

import (
	"time"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
)

const (
	credentialKey       = "tba-api-key"
	scheduleHistoryKey  = "schedule-history"
	scheduleCachePrefix = "schedule:"
)

func scheduleCacheKey(eventID string) string {
	return scheduleCachePrefix + eventID
}

type entryModel struct {
	MatchNumber int    `json:"matchNumber"`
	MatchKey    string `json:"matchKey"`
	Red1        string `json:"red1"`
	Red2        string `json:"red2"`
	Red3        string `json:"red3"`
	Blue1       string `json:"blue1"`
	Blue2       string `json:"blue2"`
	Blue3       string `json:"blue3"`
}

// cachedScheduleModel is the document stored under schedule:<eventId>.
type cachedScheduleModel struct {
	Schedule  []entryModel `json:"schedule" validate:"required"`
	Timestamp int64        `json:"timestamp"`
}

type historyRecordModel struct {
	EventID   string       `json:"eventId" validate:"required"`
	EventName string       `json:"eventName,omitempty"`
	Timestamp int64        `json:"timestamp"`
	Schedule  []entryModel `json:"schedule"`
}

func validateCachedSchedule(m cachedScheduleModel) error {
	return modelValidator.Struct(m)
}

func validateHistory(records []historyRecordModel) error {
	return modelValidator.Var(records, "dive")
}

func toEntryModels(entries []schedule.Entry) []entryModel {
	out := make([]entryModel, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryModel{
			MatchNumber: e.MatchNumber,
			MatchKey:    e.MatchKey,
			Red1:        e.Red1,
			Red2:        e.Red2,
			Red3:        e.Red3,
			Blue1:       e.Blue1,
			Blue2:       e.Blue2,
			Blue3:       e.Blue3,
		})
	}
	return out
}

func toEntries(models []entryModel) []schedule.Entry {
	out := make([]schedule.Entry, 0, len(models))
	for _, m := range models {
		out = append(out, schedule.Entry{
			MatchNumber: m.MatchNumber,
			MatchKey:    m.MatchKey,
			Red1:        slotValue(m.Red1),
			Red2:        slotValue(m.Red2),
			Red3:        slotValue(m.Red3),
			Blue1:       slotValue(m.Blue1),
			Blue2:       slotValue(m.Blue2),
			Blue3:       slotValue(m.Blue3),
		})
	}
	return out
}

// slotValue keeps hand-edited or older documents from introducing empty slots.
func slotValue(v string) string {
	if v == "" {
		return schedule.UnknownTeam
	}
	return v
}

func (m historyRecordModel) toDomain() schedule.Record {
	return schedule.Record{
		EventID:   m.EventID,
		EventName: m.EventName,
		Timestamp: time.UnixMilli(m.Timestamp),
		Entries:   toEntries(m.Schedule),
	}
}

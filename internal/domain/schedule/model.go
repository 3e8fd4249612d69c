package schedule

import "time"

// UnknownTeam marks an alliance slot the remote data left empty.
const UnknownTeam = "—"

// Entry is one qualification match with its six alliance slots. Slot values
// are bare team numbers or UnknownTeam, never empty.
type Entry struct {
	MatchNumber int
	MatchKey    string
	Red1        string
	Red2        string
	Red3        string
	Blue1       string
	Blue2       string
	Blue3       string
}

// Team returns the value stored in slot.
func (e Entry) Team(slot Slot) string {
	switch slot {
	case SlotRed1:
		return e.Red1
	case SlotRed2:
		return e.Red2
	case SlotRed3:
		return e.Red3
	case SlotBlue1:
		return e.Blue1
	case SlotBlue2:
		return e.Blue2
	case SlotBlue3:
		return e.Blue3
	default:
		return UnknownTeam
	}
}

// Teams lists the slot values in R1..R3, B1..B3 order.
func (e Entry) Teams() [6]string {
	return [6]string{e.Red1, e.Red2, e.Red3, e.Blue1, e.Blue2, e.Blue3}
}

// Record is a normalized schedule for one event as it sits in the cache or
// the history log.
type Record struct {
	EventID   string
	EventName string
	Timestamp time.Time
	Entries   []Entry
}

// Match returns the first entry with the given match number.
func (r Record) Match(matchNumber int) (Entry, bool) {
	for _, e := range r.Entries {
		if e.MatchNumber == matchNumber {
			return e, true
		}
	}
	return Entry{}, false
}

// RawMatch is a match as reported by the alliance-data service, before
// filtering and normalization.
type RawMatch struct {
	Key          string
	EventKey     string
	CompLevel    string
	MatchNumber  int
	RedTeamKeys  []string
	BlueTeamKeys []string
}

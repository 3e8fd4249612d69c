package schedule

import (
	"sort"
	"strings"
)

const (
	compLevelQualification = "qm"
	qualificationKeyMarker = "_qm"
	teamKeyPrefix          = "frc"
)

// IsQualification reports whether a raw match belongs to the qualification
// rounds, by level tag or, failing that, by its key.
func IsQualification(m RawMatch) bool {
	return m.CompLevel == compLevelQualification || strings.Contains(m.Key, qualificationKeyMarker)
}

// Normalize keeps qualification matches, orders them by match number (stable
// for ties) and flattens alliances into the six slot fields.
func Normalize(matches []RawMatch) []Entry {
	quals := make([]RawMatch, 0, len(matches))
	for _, m := range matches {
		if IsQualification(m) {
			quals = append(quals, m)
		}
	}

	sort.SliceStable(quals, func(i, j int) bool {
		return quals[i].MatchNumber < quals[j].MatchNumber
	})

	out := make([]Entry, 0, len(quals))
	for _, m := range quals {
		out = append(out, Entry{
			MatchNumber: m.MatchNumber,
			MatchKey:    m.Key,
			Red1:        teamAt(m.RedTeamKeys, 0),
			Red2:        teamAt(m.RedTeamKeys, 1),
			Red3:        teamAt(m.RedTeamKeys, 2),
			Blue1:       teamAt(m.BlueTeamKeys, 0),
			Blue2:       teamAt(m.BlueTeamKeys, 1),
			Blue3:       teamAt(m.BlueTeamKeys, 2),
		})
	}
	return out
}

// TeamNumberFromKey strips the team-type prefix ("frc254" -> "254").
func TeamNumberFromKey(key string) string {
	return strings.Replace(strings.TrimSpace(key), teamKeyPrefix, "", 1)
}

func teamAt(keys []string, i int) string {
	if i >= len(keys) {
		return UnknownTeam
	}
	if n := TeamNumberFromKey(keys[i]); n != "" {
		return n
	}
	return UnknownTeam
}

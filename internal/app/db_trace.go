package app

import (
	"strings"
	"unicode/utf8"
)

const maxTracedQueryLength = 256

// formatDBQueryForTrace flattens a kv_entries statement onto one line. Values
// are bound as placeholders, so the text never carries stored payloads.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + "..."
}

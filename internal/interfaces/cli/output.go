package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
	"github.com/riskibarqy/scout-schedule/internal/domain/team"
	"github.com/riskibarqy/scout-schedule/internal/usecase"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func parseFormat(raw string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(raw)))
	switch format {
	case FormatText, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", raw)
	}
}

type scheduleOutput struct {
	EventID   string        `json:"event_id"`
	EventName string        `json:"event_name,omitempty"`
	FetchedAt time.Time     `json:"fetched_at"`
	FromCache bool          `json:"from_cache"`
	Matches   []matchOutput `json:"matches"`
}

type matchOutput struct {
	MatchNumber int       `json:"match_number"`
	MatchKey    string    `json:"match_key"`
	Red         [3]string `json:"red"`
	Blue        [3]string `json:"blue"`
}

type historyOutput struct {
	EventID    string    `json:"event_id"`
	EventName  string    `json:"event_name,omitempty"`
	FetchedAt  time.Time `json:"fetched_at"`
	MatchCount int       `json:"match_count"`
}

type rosterOutput struct {
	Team        string `json:"team"`
	Slot        string `json:"slot"`
	MatchNumber int    `json:"match_number"`
	EventID     string `json:"event_id"`
	EventName   string `json:"event_name,omitempty"`
}

type teamOutput struct {
	Number      int    `json:"number"`
	DisplayName string `json:"display_name"`
	Logo        string `json:"logo"`
}

func toScheduleOutput(record schedule.Record, fromCache bool) scheduleOutput {
	matches := make([]matchOutput, 0, len(record.Entries))
	for _, entry := range record.Entries {
		matches = append(matches, matchOutput{
			MatchNumber: entry.MatchNumber,
			MatchKey:    entry.MatchKey,
			Red:         [3]string{entry.Red1, entry.Red2, entry.Red3},
			Blue:        [3]string{entry.Blue1, entry.Blue2, entry.Blue3},
		})
	}
	return scheduleOutput{
		EventID:   record.EventID,
		EventName: record.EventName,
		FetchedAt: record.Timestamp.UTC(),
		FromCache: fromCache,
		Matches:   matches,
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := sonic.ConfigStd.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeSchedule(w io.Writer, format OutputFormat, out scheduleOutput) error {
	if format == FormatJSON {
		return writeJSON(w, out)
	}

	title := out.EventID
	if out.EventName != "" {
		title = fmt.Sprintf("%s (%s)", out.EventName, out.EventID)
	}
	source := "fetched"
	if out.FromCache {
		source = "cached"
	}
	fmt.Fprintf(w, "%s, %d qualification matches, %s %s\n", title, len(out.Matches), source, out.FetchedAt.Local().Format(time.DateTime))
	if len(out.Matches) == 0 {
		fmt.Fprintln(w, "No qualification matches published yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MATCH\tR1\tR2\tR3\tB1\tB2\tB3")
	for _, m := range out.Matches {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", m.MatchNumber, m.Red[0], m.Red[1], m.Red[2], m.Blue[0], m.Blue[1], m.Blue[2])
	}
	return tw.Flush()
}

func writeHistory(w io.Writer, format OutputFormat, records []schedule.Record) error {
	out := make([]historyOutput, 0, len(records))
	for _, record := range records {
		out = append(out, historyOutput{
			EventID:    record.EventID,
			EventName:  record.EventName,
			FetchedAt:  record.Timestamp.UTC(),
			MatchCount: len(record.Entries),
		})
	}
	if format == FormatJSON {
		return writeJSON(w, out)
	}
	if len(out) == 0 {
		fmt.Fprintln(w, "No schedules in history.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EVENT\tNAME\tMATCHES\tFETCHED")
	// Most recent first reads better in a terminal.
	for i := len(out) - 1; i >= 0; i-- {
		item := out[i]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", item.EventID, item.EventName, item.MatchCount, item.FetchedAt.Local().Format(time.DateTime))
	}
	return tw.Flush()
}

func writeRoster(w io.Writer, format OutputFormat, item usecase.RosterAssignment) error {
	out := rosterOutput{
		Team:        item.Team,
		Slot:        item.Slot.String(),
		MatchNumber: item.MatchNumber,
		EventID:     item.EventID,
		EventName:   item.EventName,
	}
	if format == FormatJSON {
		return writeJSON(w, out)
	}
	_, err := fmt.Fprintln(w, out.Team)
	return err
}

func writeTeam(w io.Writer, format OutputFormat, identity team.Identity) error {
	out := teamOutput{
		Number:      identity.Number,
		DisplayName: identity.DisplayName,
		Logo:        identity.Logo,
	}
	if format == FormatJSON {
		return writeJSON(w, out)
	}
	fmt.Fprintf(w, "%d\t%s\n", out.Number, out.DisplayName)
	logo := out.Logo
	if strings.HasPrefix(logo, "data:") {
		logo = "embedded avatar"
	}
	_, err := fmt.Fprintf(w, "logo: %s\n", logo)
	return err
}

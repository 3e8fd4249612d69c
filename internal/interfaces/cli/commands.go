package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/scout-schedule/internal/domain/schedule"
	"github.com/riskibarqy/scout-schedule/internal/domain/team"
	"github.com/riskibarqy/scout-schedule/internal/usecase"
	"github.com/spf13/cobra"
)

func newScheduleCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Fetch, inspect and manage stored qualification schedules",
	}

	var (
		refresh  bool
		prefetch bool
	)
	fetch := &cobra.Command{
		Use:   "fetch <event-key>",
		Short: "Load an event's qualification schedule (cached unless --refresh)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withServices(cmd.Context(), func(s Services) error {
				var (
					record    schedule.Record
					fromCache bool
					err       error
				)
				if refresh {
					r.logf("Fetching %s from The Blue Alliance", args[0])
					record, err = s.Schedules.Refresh(cmd.Context(), args[0])
				} else {
					var result usecase.ScheduleResult
					result, err = s.Schedules.Load(cmd.Context(), args[0])
					record, fromCache = result.Record, result.FromCache
				}
				if err != nil {
					return err
				}

				if prefetch {
					numbers := teamNumbers(record.Entries)
					r.logf("Prefetching %d team identities", len(numbers))
					if _, err := s.Identities.Prefetch(cmd.Context(), numbers); err != nil {
						return fmt.Errorf("prefetching teams: %w", err)
					}
				}

				return writeSchedule(r.stdout, r.format(), toScheduleOutput(record, fromCache))
			})
		},
	}
	fetch.Flags().BoolVar(&refresh, "refresh", false, "Ignore the cached copy and fetch again")
	fetch.Flags().BoolVar(&prefetch, "prefetch-teams", false, "Also resolve names and logos for every team in the schedule")

	clearCmd := &cobra.Command{
		Use:   "clear <event-key>",
		Short: "Drop the cached schedule for an event (history is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withServices(cmd.Context(), func(s Services) error {
				if err := s.Schedules.ClearCache(cmd.Context(), args[0]); err != nil {
					return err
				}
				r.logf("Cleared cached schedule for %s", args[0])
				return nil
			})
		},
	}

	history := &cobra.Command{
		Use:   "history",
		Short: "List stored schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withServices(cmd.Context(), func(s Services) error {
				return writeHistory(r.stdout, r.format(), s.Schedules.History(cmd.Context()))
			})
		},
	}

	show := &cobra.Command{
		Use:   "show <event-key>",
		Short: "Print a schedule from history without contacting The Blue Alliance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withServices(cmd.Context(), func(s Services) error {
				record, err := s.Schedules.LoadFromHistory(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeSchedule(r.stdout, r.format(), toScheduleOutput(record, true))
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <event-key>",
		Short: "Delete a schedule from history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withServices(cmd.Context(), func(s Services) error {
				return s.Schedules.RemoveFromHistory(cmd.Context(), args[0])
			})
		},
	}

	cmd.AddCommand(fetch, clearCmd, history, show, remove)
	return cmd
}

func newRosterCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "roster <match-number> <slot>",
		Short: "Print the team in an alliance slot (R1..R3, B1..B3) of a qualification match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			matchNumber, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("%w: match number must be an integer, got %q", usecase.ErrInvalidInput, args[0])
			}

			return r.withServices(cmd.Context(), func(s Services) error {
				item, ok, err := s.Rosters.Lookup(cmd.Context(), matchNumber, args[1])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: no stored schedule has a team in slot %s of match %d",
						usecase.ErrNotFound, strings.ToUpper(strings.TrimSpace(args[1])), matchNumber)
				}
				return writeRoster(r.stdout, r.format(), item)
			})
		},
	}
}

func newTeamCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "team <team-number>",
		Short: "Print a team's display name and logo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := team.ParseNumber(args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
			}

			return r.withServices(cmd.Context(), func(s Services) error {
				return writeTeam(r.stdout, r.format(), s.Identities.Resolve(cmd.Context(), number))
			})
		},
	}
}

func newCredentialCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Manage The Blue Alliance API key",
	}

	set := &cobra.Command{
		Use:   "set <api-key>",
		Short: "Store the API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withServices(cmd.Context(), func(s Services) error {
				if err := s.Credentials.Save(cmd.Context(), args[0]); err != nil {
					return err
				}
				s.Identities.ForgetAll(cmd.Context())
				fmt.Fprintln(r.stdout, "API key saved.")
				return nil
			})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withServices(cmd.Context(), func(s Services) error {
				if err := s.Credentials.Clear(cmd.Context()); err != nil {
					return err
				}
				s.Identities.ForgetAll(cmd.Context())
				fmt.Fprintln(r.stdout, "API key removed.")
				return nil
			})
		},
	}

	cmd.AddCommand(set, clearCmd)
	return cmd
}

// teamNumbers lists the known team numbers in a schedule, unknown slots skipped.
func teamNumbers(entries []schedule.Entry) []int {
	out := make([]int, 0, len(entries)*6)
	for _, entry := range entries {
		for _, value := range entry.Teams() {
			if value == schedule.UnknownTeam {
				continue
			}
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				out = append(out, n)
			}
		}
	}
	return out
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/riskibarqy/scout-schedule/internal/usecase"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Services is what the commands operate on. Opener builds it lazily so that
// --help and flag errors never touch storage.
type Services struct {
	Schedules   *usecase.ScheduleService
	Rosters     *usecase.RosterService
	Identities  *usecase.TeamIdentityService
	Credentials *usecase.CredentialService
}

type Opener func(ctx context.Context) (Services, func() error, error)

type rootOptions struct {
	format  string
	verbose bool
}

type runner struct {
	open   Opener
	opts   *rootOptions
	stdout io.Writer
	stderr io.Writer
}

// NewRootCmd creates the scout command tree.
func NewRootCmd(open Opener, stdout, stderr io.Writer) *cobra.Command {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	opts := &rootOptions{}
	r := &runner{open: open, opts: opts, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "scout",
		Short: "Qualification schedules and team lookups for FRC scouting",
		Long: `Fetches qualification match schedules from The Blue Alliance, keeps the
most recent ones on disk, and answers which team plays in a given alliance slot.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			_, err := parseFormat(opts.format)
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&opts.format, "format", string(FormatText), "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Print progress details to stderr")

	cmd.AddCommand(
		newScheduleCmd(r),
		newRosterCmd(r),
		newTeamCmd(r),
		newCredentialCmd(r),
	)

	return cmd
}

// withServices opens the runtime, runs fn and closes it again.
func (r *runner) withServices(ctx context.Context, fn func(Services) error) error {
	services, closeFn, err := r.open(ctx)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	defer func() {
		if closeFn != nil {
			_ = closeFn()
		}
	}()
	return fn(services)
}

func (r *runner) format() OutputFormat {
	format, _ := parseFormat(r.opts.format)
	return format
}

func (r *runner) logf(format string, args ...any) {
	if r.opts.verbose {
		fmt.Fprintf(r.stderr, format+"\n", args...)
	}
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, open Opener, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(open, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", errorMessage(err))
		return ExitError
	}
	return ExitSuccess
}

// errorMessage prefers the scout-facing wording for alliance-data failures.
func errorMessage(err error) string {
	var (
		missing *usecase.MissingCredentialError
		remote  *usecase.RemoteError
		network *usecase.NetworkError
	)
	switch {
	case errors.As(err, &missing), errors.As(err, &remote), errors.As(err, &network),
		errors.Is(err, usecase.ErrDependencyUnavailable):
		return usecase.UserMessage(err)
	default:
		return strings.TrimSpace(err.Error())
	}
}

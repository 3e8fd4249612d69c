package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/scout-schedule/internal/app"
	"github.com/riskibarqy/scout-schedule/internal/config"
	"github.com/riskibarqy/scout-schedule/internal/interfaces/cli"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitError)
	}

	level := cfg.LogLevel
	if os.Getenv("LOG_LEVEL") == "" {
		level = logging.LevelWarn
	}
	// Diagnostics stay on stderr; stdout carries command output only.
	logger := logging.NewConsole(level, os.Stderr)
	logging.SetDefault(logger)

	open := func(ctx context.Context) (cli.Services, func() error, error) {
		rt, err := app.NewRuntime(ctx, cfg, logger)
		if err != nil {
			return cli.Services{}, nil, err
		}
		return cli.Services{
			Schedules:   rt.Schedules,
			Rosters:     rt.Rosters,
			Identities:  rt.Identities,
			Credentials: rt.Credentials,
		}, rt.Close, nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, open, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	_ = logger.Sync()
	os.Exit(code)
}

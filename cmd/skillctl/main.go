package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"skillforge/internal/app"
	"skillforge/internal/cli"
	"skillforge/internal/config"
	"skillforge/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(cli.ExitError)
	}

	// Operator output goes to stdout; keep the service log quiet unless asked.
	level := logging.Level(cfg.Log.Level)
	if level == logging.LevelInfo {
		level = logging.LevelWarn
	}
	logger, err := logging.New(level, logging.Format(cfg.Log.Format))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(cli.ExitError)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(func(ctx context.Context) (*app.Container, error) {
		return app.NewContainer(ctx, cfg, logger)
	})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(cli.ExitCode(err))
	}
}

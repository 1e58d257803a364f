package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/flightlog/internal/cli"
	"github.com/alexanderramin/flightlog/internal/config"
	"github.com/alexanderramin/flightlog/internal/logging"
	"github.com/alexanderramin/flightlog/internal/storage"
	"github.com/alexanderramin/flightlog/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for development overrides; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logger.Sync()

	backend, err := storage.Open(cfg.Backend, cfg.DataDir, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer backend.Close()

	st := store.Open(context.Background(), backend, logging.Named(logger, "store"))

	app := &cli.App{
		Store: st,
	}

	// Detect interactive terminal for the UI-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dtroode/fintrack-web/internal/cli"
	"github.com/dtroode/fintrack-web/internal/config"
	"github.com/dtroode/fintrack-web/internal/httpclient"
	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/service"
	"github.com/dtroode/fintrack-web/internal/session"
	"github.com/dtroode/fintrack-web/internal/storage/local"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse config: %v\n", err)
		return 1
	}
	// Diagnostics go to stderr so command output stays clean.
	logger := logger.NewWithWriter(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	path := cfg.CLI.StorePath
	if path == "" {
		path, err = local.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to resolve session file: %v\n", err)
			return 1
		}
	}

	storage, err := local.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open session file: %v\n", err)
		return 1
	}
	defer storage.Close()

	backend, err := httpclient.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create backend client: %v\n", err)
		return 1
	}

	sessions := session.NewManager(backend, session.NewRefresher(backend, logger), logger)
	app := cli.NewApp(sessions, storage, service.NewAuth(logger), logger)

	if err := cli.NewRootCommand(app).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fintrack: %v\n", err)
		return 1
	}
	return 0
}

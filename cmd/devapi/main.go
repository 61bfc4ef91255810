package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	httpServer "github.com/dtroode/fintrack-web/internal/api/http/server"
	"github.com/dtroode/fintrack-web/internal/config"
	"github.com/dtroode/fintrack-web/internal/devapi"
	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat).With("component", "devapi")

	if cfg.IsProduction() {
		logger.Fatal("the development backend must not run in production")
	}

	api := devapi.New(devapi.Options{
		JWTSecret: cfg.DevAPI.JWTSecret,
		AccessTTL: cfg.DevAPI.AccessTTL,
	}, logger)

	if cfg.DevAPI.DemoEmail != "" {
		err := api.Seed(ctx, model.Registration{
			Name:     "Demo",
			Email:    cfg.DevAPI.DemoEmail,
			Password: cfg.DevAPI.DemoPassword,
		})
		if err != nil {
			logger.Fatal("failed to seed demo account", "error", err)
		}
	}

	s := httpServer.NewHTTPServer(api.Handler(), fmt.Sprintf(":%s", cfg.DevAPI.Port), cfg.HTTP.ReadHeaderTimeout)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting dev API on", "address", s.Address())
		if err := s.Start(server.NewPlainListener()); err != nil {
			logger.Error("failed to start dev API", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := s.Stop(shutdownCtx); err != nil {
		logger.Error("error during dev API shutdown", "error", err)
	}

	wg.Wait()
}

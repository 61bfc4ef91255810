package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	httpcontext "github.com/dtroode/fintrack-web/internal/api/http/context"
	"github.com/dtroode/fintrack-web/internal/api/http/middleware"
	"github.com/dtroode/fintrack-web/internal/api/http/router"
	httpServer "github.com/dtroode/fintrack-web/internal/api/http/server"
	"github.com/dtroode/fintrack-web/internal/config"
	"github.com/dtroode/fintrack-web/internal/httpclient"
	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/server"
	"github.com/dtroode/fintrack-web/internal/service"
	"github.com/dtroode/fintrack-web/internal/session"
	"github.com/dtroode/fintrack-web/internal/storage/cookie"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	policy, err := model.ParseGuardPolicy(cfg.Session.RefreshOnlyPolicy)
	if err != nil {
		logger.Fatal("failed to parse guard policy", "error", err)
	}

	backend, err := httpclient.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	if err != nil {
		logger.Fatal("failed to create backend client", "error", err)
	}

	sessions := session.NewManager(backend, session.NewRefresher(backend, logger), logger)
	authService := service.NewAuth(logger)
	financeService := service.NewFinance(logger)
	ctxMgr := httpcontext.NewManager()

	r := router.New(authService, financeService, sessions, ctxMgr, router.Options{
		Cookie: cookie.Options{
			Secure:   cfg.IsProduction(),
			SameSite: sameSite(cfg.Session.SameSite),
		},
		Guard: middleware.GuardConfig{
			ProtectedPrefixes: cfg.Session.ProtectedPrefixes,
			LoginPath:         cfg.Session.LoginPath,
			RefreshOnly:       policy,
		},
		HomePath: cfg.Session.HomePath,
	}, logger)

	webServer := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadHeaderTimeout)
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "backend", cfg.Backend.BaseURL)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(webServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := webServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", webServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func sameSite(value string) http.SameSite {
	if value == "strict" {
		return http.SameSiteStrictMode
	}
	return http.SameSiteLaxMode
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

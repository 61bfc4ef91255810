package devapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	httpcontext "github.com/dtroode/fintrack-web/internal/api/http/context"
	"github.com/dtroode/fintrack-web/internal/api/http/middleware"
	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/repository/memory"
	"github.com/dtroode/fintrack-web/internal/token"
)

// Options configures the development backend.
type Options struct {
	JWTSecret string
	AccessTTL time.Duration
	// Now replaces time.Now for token issuing, validation and demo data.
	Now func() time.Time
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

// API is an in-memory implementation of the finance backend consumed by the web front-end.
type API struct {
	accounts *Accounts
	tokens   *TokenService
	handler  http.Handler
	logger   *logger.Logger
}

func New(opts Options, logger *logger.Logger) *API {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	jwt := token.NewJWT(opts.JWTSecret, opts.AccessTTL, token.WithClock(now))
	tokens := NewTokenService(jwt, memory.NewRefreshTokenRepository(now), now, logger)
	accounts := NewAccounts(memory.NewAccountRepository(), tokens, now, logger)
	if opts.BcryptCost > 0 {
		accounts.cost = opts.BcryptCost
	}

	contextManager := httpcontext.NewManager()
	h := NewHandler(accounts, tokens, NewLedger(now), contextManager, logger)
	authenticate := middleware.NewAuthenticate(tokens, contextManager, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID, middleware.NewLogging(logger).Handle, chimw.Recoverer)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)
		r.Post("/logout", h.Logout)
	})
	r.Group(func(r chi.Router) {
		r.Use(authenticate.Handle)
		r.Get("/users/me", h.Me)
		r.Get("/summary", h.Summary)
		r.Get("/entries", h.Entries)
		r.Get("/forecast", h.Forecast)
	})

	return &API{accounts: accounts, tokens: tokens, handler: r, logger: logger}
}

// Handler returns the HTTP surface of the backend.
func (a *API) Handler() http.Handler {
	return a.handler
}

// Seed creates a demo account unless it already exists.
func (a *API) Seed(ctx context.Context, reg model.Registration) error {
	_, err := a.accounts.Register(ctx, reg)
	if err != nil && !errors.Is(err, model.ErrEmailTaken) {
		return fmt.Errorf("failed to seed demo account: %w", err)
	}
	a.logger.Info("Dev API: demo account ready", "email", reg.Email)
	return nil
}

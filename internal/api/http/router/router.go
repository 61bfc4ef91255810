package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	httpcontext "github.com/dtroode/fintrack-web/internal/api/http/context"
	"github.com/dtroode/fintrack-web/internal/api/http/handler"
	"github.com/dtroode/fintrack-web/internal/api/http/middleware"
	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/session"
	"github.com/dtroode/fintrack-web/internal/storage/cookie"
)

// Options configures the web router.
type Options struct {
	Cookie cookie.Options
	Guard  middleware.GuardConfig
	// HomePath is where a successful form login lands.
	HomePath string
}

// Router represents the HTTP router of the web front-end.
// It wires middleware, the session core and the page handlers.
type Router struct {
	authService    handler.AuthService
	financeService handler.FinanceService
	sessions       *session.Manager
	contextManager *httpcontext.Manager
	opts           Options
	logger         *logger.Logger
}

// New creates a new Router instance.
//
// Parameters:
//   - authService: The login/registration use cases
//   - financeService: The finance read use cases
//   - sessions: The session manager binding each request's cookie jar
//   - contextManager: The request context manager
//   - opts: Cookie, guard and redirect settings
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	authService handler.AuthService,
	financeService handler.FinanceService,
	sessions *session.Manager,
	contextManager *httpcontext.Manager,
	opts Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		financeService: financeService,
		sessions:       sessions,
		contextManager: contextManager,
		opts:           opts,
		logger:         logger,
	}
}

// Register builds the http.Handler with all middleware and routes.
func (r *Router) Register() http.Handler {
	root := chi.NewRouter()

	root.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.NewLogging(r.logger).Handle,
		chimw.Recoverer,
		middleware.NewSessions(r.sessions, r.contextManager, r.opts.Cookie, r.logger).Handle,
		middleware.NewGuard(r.opts.Guard, r.logger).Handle,
	)

	root.Get("/healthz", handler.Health)
	r.registerAuthRoutes(root)
	r.registerPageRoutes(root)

	return root
}

func (r *Router) registerAuthRoutes(root chi.Router) {
	loginPath := r.opts.Guard.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}

	h := handler.NewAuth(r.authService, r.contextManager, handler.Paths{Login: loginPath, Home: r.opts.HomePath}, r.logger)
	root.Get(loginPath, h.LoginPage)
	root.Post(loginPath, h.Login)
	root.Post("/register", h.Register)
	root.Post("/logout", h.Logout)
	root.Post("/session/refresh", h.Refresh)
}

func (r *Router) registerPageRoutes(root chi.Router) {
	h := handler.NewPages(r.authService, r.financeService, r.contextManager, r.opts.Guard.LoginPath, r.logger)
	root.Get("/dashboard", h.Dashboard)
	root.Get("/summary", h.Summary)
	root.Get("/entries", h.Entries)
	root.Get("/forecast", h.Forecast)
}

package middleware

import (
	"context"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/session"
	"github.com/dtroode/fintrack-web/internal/storage/cookie"
)

// SessionBinder is the part of a session manager the middleware needs.
type SessionBinder interface {
	Bind(storage model.Storage, opts ...session.CoordinatorOption) *session.Session
}

// SessionContext stores the session in a request context.
type SessionContext interface {
	SetSessionToContext(ctx context.Context, sess *session.Session) context.Context
}

// Sessions binds a session over the cookie jar of each request.
type Sessions struct {
	binder         SessionBinder
	contextManager SessionContext
	opts           cookie.Options
	logger         *logger.Logger
}

func NewSessions(binder SessionBinder, contextManager SessionContext, opts cookie.Options, logger *logger.Logger) *Sessions {
	return &Sessions{binder: binder, contextManager: contextManager, opts: opts, logger: logger}
}

func (s *Sessions) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := cookie.Track(w)
		sess := s.binder.Bind(cookie.New(tw, r, s.opts, s.logger), session.WithTeardownHook(func(ctx context.Context) {
			s.logger.Info("Sessions: session ended",
				"path", r.URL.Path,
				"request_id", chimw.GetReqID(ctx))
		}))
		next.ServeHTTP(tw, r.WithContext(s.contextManager.SetSessionToContext(r.Context(), sess)))
	})
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/dtroode/fintrack-web/internal/api/http/respond"
	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/session"
)

// FinanceService defines the read use cases behind the protected pages.
type FinanceService interface {
	Summary(ctx context.Context, sess *session.Session) (json.RawMessage, error)
	Entries(ctx context.Context, sess *session.Session, query url.Values) (json.RawMessage, error)
	Forecast(ctx context.Context, sess *session.Session, query url.Values) (json.RawMessage, error)
}

// Pages serves the data of the protected pages.
type Pages struct {
	authService    AuthService
	financeService FinanceService
	contextManager SessionContext
	loginPath      string
	logger         *logger.Logger
}

func NewPages(authService AuthService, financeService FinanceService, contextManager SessionContext, loginPath string, logger *logger.Logger) *Pages {
	if loginPath == "" {
		loginPath = "/login"
	}
	return &Pages{
		authService:    authService,
		financeService: financeService,
		contextManager: contextManager,
		loginPath:      loginPath,
		logger:         logger,
	}
}

type dashboardData struct {
	User    model.User      `json:"user"`
	Summary json.RawMessage `json:"summary"`
}

func (h *Pages) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	user, err := h.authService.Profile(r.Context(), sess)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	summary, err := h.financeService.Summary(r.Context(), sess)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, dashboardData{User: user, Summary: summary})
}

func (h *Pages) Summary(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, sess *session.Session) (json.RawMessage, error) {
		return h.financeService.Summary(ctx, sess)
	})
}

func (h *Pages) Entries(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, sess *session.Session) (json.RawMessage, error) {
		return h.financeService.Entries(ctx, sess, r.URL.Query())
	})
}

func (h *Pages) Forecast(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, sess *session.Session) (json.RawMessage, error) {
		return h.financeService.Forecast(ctx, sess, r.URL.Query())
	})
}

func (h *Pages) serve(w http.ResponseWriter, r *http.Request, load func(ctx context.Context, sess *session.Session) (json.RawMessage, error)) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	payload, err := load(r.Context(), sess)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// fail redirects to the login page when the session is gone.
func (h *Pages) fail(w http.ResponseWriter, r *http.Request, err error) {
	if sessionLost(err) {
		h.logger.Info("Pages handler: session lost, redirecting to login", "path", r.URL.Path)
		http.Redirect(w, r, h.loginPath, http.StatusFound)
		return
	}

	h.logger.Error("Pages handler: failed to load page",
		"path", r.URL.Path,
		"error", err.Error())
	handleError(w, r, err)
}

func (h *Pages) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		h.logger.Error("Pages handler: no session bound to request", "path", r.URL.Path)
		respond.Error(w, r, http.StatusInternalServerError, "internal", "internal server error")
		return nil, false
	}
	return sess, true
}

package devapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/fintrack-web/internal/api/http/respond"
	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
)

// Handler serves the development backend endpoints.
type Handler struct {
	accounts *Accounts
	tokens   *TokenService
	ledger   *Ledger
	users    model.ContextManager
	logger   *logger.Logger
}

func NewHandler(accounts *Accounts, tokens *TokenService, ledger *Ledger, users model.ContextManager, logger *logger.Logger) *Handler {
	return &Handler{accounts: accounts, tokens: tokens, ledger: ledger, users: users, logger: logger}
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in model.Registration
	if err := respond.DecodeStrict(r, &in); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid_argument", "malformed request")
		return
	}
	if strings.TrimSpace(in.Email) == "" || len(in.Password) < 8 {
		respond.Error(w, r, http.StatusBadRequest, "invalid_argument", "email and a password of at least 8 characters are required")
		return
	}

	result, err := h.accounts.Register(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in model.Credentials
	if err := respond.DecodeStrict(r, &in); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid_argument", "malformed request")
		return
	}

	result, err := h.accounts.Login(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := respond.DecodeStrict(r, &in); err != nil || in.RefreshToken == "" {
		respond.Error(w, r, http.StatusBadRequest, "invalid_argument", "refreshToken is required")
		return
	}

	tokens, err := h.tokens.Refresh(r.Context(), in.RefreshToken)
	if err != nil {
		h.logger.Info("Dev API: refresh rejected", "error", err.Error())
		respond.Error(w, r, http.StatusUnauthorized, "unauthenticated", "invalid refresh token")
		return
	}
	respond.JSON(w, http.StatusOK, tokens)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := respond.DecodeStrict(r, &in); err != nil || in.RefreshToken == "" {
		respond.Error(w, r, http.StatusBadRequest, "invalid_argument", "refreshToken is required")
		return
	}

	if err := h.tokens.RevokeByToken(r.Context(), in.RefreshToken); err != nil {
		h.logger.Debug("Dev API: logout with unknown token", "error", err.Error())
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.accounts.Profile(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, h.ledger.Summary(userID))
}

func (h *Handler) Entries(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	entries := h.ledger.Entries(userID, EntryFilter{Kind: q.Get("kind"), Category: q.Get("category")})
	respond.JSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	months := 0
	if raw := r.URL.Query().Get("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respond.Error(w, r, http.StatusBadRequest, "invalid_argument", "months must be a number")
			return
		}
		months = n
	}
	respond.JSON(w, http.StatusOK, h.ledger.Forecast(userID, months))
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := h.users.GetUserIDFromContext(r.Context())
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, "unauthenticated", "missing user")
		return uuid.Nil, false
	}
	return userID, true
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		respond.Error(w, r, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
	case errors.Is(err, model.ErrEmailTaken):
		respond.Error(w, r, http.StatusConflict, "email_taken", "email is already registered")
	case errors.Is(err, model.ErrNotFound):
		respond.Error(w, r, http.StatusNotFound, "not_found", "not found")
	default:
		h.logger.Error("Dev API: request failed",
			"path", r.URL.Path,
			"error", err.Error())
		respond.Error(w, r, http.StatusInternalServerError, "internal", "internal server error")
	}
}

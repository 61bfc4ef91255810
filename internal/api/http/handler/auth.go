package handler

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"github.com/dtroode/fintrack-web/internal/api/http/respond"
	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/session"
)

// AuthService defines login, registration and logout use cases.
type AuthService interface {
	Login(ctx context.Context, sess *session.Session, creds model.Credentials) (model.User, error)
	Register(ctx context.Context, sess *session.Session, reg model.Registration) (model.User, error)
	Logout(ctx context.Context, sess *session.Session) error
	Profile(ctx context.Context, sess *session.Session) (model.User, error)
}

// SessionContext resolves the session bound to a request.
type SessionContext interface {
	GetSessionFromContext(ctx context.Context) (*session.Session, bool)
}

// Paths are the redirect targets of the web flows.
type Paths struct {
	Login string
	Home  string
}

// Auth handles the sign-in pages and session endpoints.
type Auth struct {
	authService    AuthService
	contextManager SessionContext
	paths          Paths
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager SessionContext, paths Paths, logger *logger.Logger) *Auth {
	if paths.Login == "" {
		paths.Login = "/login"
	}
	if paths.Home == "" {
		paths.Home = "/dashboard"
	}
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		paths:          paths,
		logger:         logger,
	}
}

var loginPage = template.Must(template.New("login").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Sign in</title></head>
<body>
{{if .Error}}<p role="alert">{{.Error}}</p>{{end}}
<form method="post" action="{{.Action}}">
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" minlength="8" required></label>
<button type="submit">Sign in</button>
</form>
</body>
</html>
`))

// LoginPage renders the sign-in form.
func (h *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Action string
		Error  string
	}{
		Action: h.paths.Login,
		Error:  loginErrorMessage(r.URL.Query().Get("error")),
	}
	if err := loginPage.Execute(w, data); err != nil {
		h.logger.Error("Auth handler: failed to render login page", "error", err.Error())
	}
}

// Login authenticates the user and stores the session cookies.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var creds model.Credentials
	if err := decodeInput(r, &creds, func(form url.Values) {
		creds = model.Credentials{Email: form.Get("email"), Password: form.Get("password")}
	}); err != nil {
		h.fail(w, r, model.NewValidationError("body", "malformed request"))
		return
	}

	user, err := h.authService.Login(r.Context(), sess, creds)
	if err != nil {
		h.logger.Info("Auth handler: login failed", "error", err.Error())
		h.fail(w, r, err)
		return
	}

	h.succeed(w, r, http.StatusOK, user)
}

// Register creates an account and stores the session cookies.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var reg model.Registration
	if err := decodeInput(r, &reg, func(form url.Values) {
		reg = model.Registration{Name: form.Get("name"), Email: form.Get("email"), Password: form.Get("password")}
	}); err != nil {
		h.fail(w, r, model.NewValidationError("body", "malformed request"))
		return
	}

	user, err := h.authService.Register(r.Context(), sess, reg)
	if err != nil {
		h.logger.Info("Auth handler: registration failed", "error", err.Error())
		h.fail(w, r, err)
		return
	}

	h.succeed(w, r, http.StatusCreated, user)
}

// Logout ends the session.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.authService.Logout(r.Context(), sess); err != nil {
		h.logger.Error("Auth handler: logout incomplete", "error", err.Error())
	}

	if respond.WantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, h.paths.Login, http.StatusSeeOther)
}

// Refresh exchanges the refresh token cookie for a new access token.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	tokens, err := sess.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrSessionExpired) {
			respond.Error(w, r, http.StatusUnauthorized, "session_expired", "session expired")
			return
		}
		handleError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]int64{"expiresIn": tokens.ExpiresIn})
}

func (h *Auth) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		h.logger.Error("Auth handler: no session bound to request", "path", r.URL.Path)
		respond.Error(w, r, http.StatusInternalServerError, "internal", "internal server error")
		return nil, false
	}
	return sess, true
}

func (h *Auth) succeed(w http.ResponseWriter, r *http.Request, status int, user model.User) {
	if respond.WantsJSON(r) {
		respond.JSON(w, status, map[string]model.User{"user": user})
		return
	}
	http.Redirect(w, r, h.paths.Home, http.StatusSeeOther)
}

func (h *Auth) fail(w http.ResponseWriter, r *http.Request, err error) {
	if respond.WantsJSON(r) {
		handleError(w, r, err)
		return
	}
	_, code, _ := errorStatus(err)
	http.Redirect(w, r, h.paths.Login+"?error="+url.QueryEscape(code), http.StatusSeeOther)
}

// decodeInput reads a JSON body into dst, or a form through fromForm.
func decodeInput(r *http.Request, dst any, fromForm func(url.Values)) error {
	if respond.WantsJSON(r) {
		return respond.DecodeStrict(r, dst)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	fromForm(r.PostForm)
	return nil
}

func loginErrorMessage(code string) string {
	switch code {
	case "":
		return ""
	case "invalid_credentials":
		return "Invalid email or password."
	case "invalid_argument":
		return "Please check the email and password."
	case "email_taken":
		return "This email is already registered."
	case "session_expired":
		return "Your session has expired. Please sign in again."
	default:
		return "Something went wrong. Please try again."
	}
}

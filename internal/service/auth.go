package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/session"
)

const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
	logoutPath   = "/auth/logout"
	profilePath  = "/users/me"

	minPasswordLength = 8
)

type Auth struct {
	logger *logger.Logger
}

func NewAuth(logger *logger.Logger) *Auth {
	return &Auth{logger: logger}
}

// Login authenticates against the backend and stores the issued tokens and
// user summary in sess before returning.
func (a *Auth) Login(ctx context.Context, sess *session.Session, creds model.Credentials) (model.User, error) {
	creds.Email = normalizeEmail(creds.Email)
	if err := validateEmail(creds.Email); err != nil {
		return model.User{}, err
	}
	if err := validatePassword(creds.Password); err != nil {
		return model.User{}, err
	}

	a.logger.Debug("Auth service: logging in", "email", creds.Email)

	var result model.AuthResult
	err := sess.Raw().Post(ctx, loginPath, creds, &result, nil)
	if err != nil {
		switch model.StatusCodeOf(err) {
		case http.StatusUnauthorized, http.StatusNotFound:
			a.logger.Info("Auth service: login rejected", "email", creds.Email)
			return model.User{}, model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: login call failed",
			"email", creds.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to log in: %w", err)
	}

	if err := a.persist(ctx, sess, result); err != nil {
		return model.User{}, err
	}

	a.logger.Info("Auth service: user logged in", "user_id", result.User.ID)
	return result.User, nil
}

// Register creates an account and starts a session for it.
func (a *Auth) Register(ctx context.Context, sess *session.Session, reg model.Registration) (model.User, error) {
	reg.Email = normalizeEmail(reg.Email)
	reg.Name = strings.TrimSpace(reg.Name)
	if err := validateEmail(reg.Email); err != nil {
		return model.User{}, err
	}
	if err := validatePassword(reg.Password); err != nil {
		return model.User{}, err
	}

	a.logger.Debug("Auth service: registering", "email", reg.Email)

	var result model.AuthResult
	err := sess.Raw().Post(ctx, registerPath, reg, &result, nil)
	if err != nil {
		if model.StatusCodeOf(err) == http.StatusConflict {
			return model.User{}, model.ErrEmailTaken
		}
		a.logger.Error("Auth service: register call failed",
			"email", reg.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to register: %w", err)
	}

	if err := a.persist(ctx, sess, result); err != nil {
		return model.User{}, err
	}

	a.logger.Info("Auth service: user registered", "user_id", result.User.ID)
	return result.User, nil
}

// Logout revokes the refresh token when the backend is reachable and always
// clears the local session.
func (a *Auth) Logout(ctx context.Context, sess *session.Session) error {
	if refresh, ok := sess.Store().GetRefreshToken(ctx); ok {
		body := map[string]string{"refreshToken": refresh}
		if err := sess.Raw().Post(ctx, logoutPath, body, nil, nil); err != nil {
			a.logger.Warn("Auth service: backend logout failed", "error", err.Error())
		}
	}

	return sess.Teardown(ctx)
}

// Profile returns the cached user summary, fetching it when absent.
func (a *Auth) Profile(ctx context.Context, sess *session.Session) (model.User, error) {
	if user, ok := sess.Store().User(ctx); ok {
		return user, nil
	}

	var user model.User
	err := sess.Do(ctx, func(ctx context.Context, client model.HTTPClient) error {
		return client.Get(ctx, profilePath, &user, nil)
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get profile: %w", err)
	}

	if _, err := sess.Store().SetUser(ctx, user); err != nil {
		a.logger.Warn("Auth service: failed to cache profile", "error", err.Error())
	}
	return user, nil
}

func (a *Auth) persist(ctx context.Context, sess *session.Session, result model.AuthResult) error {
	if !result.Tokens.HasAccess() || !result.Tokens.HasRefresh() {
		a.logger.Error("Auth service: backend returned an incomplete token pair")
		return errors.New("backend returned an incomplete token pair")
	}

	if _, err := sess.Store().SetTokens(ctx, result.Tokens); err != nil {
		return fmt.Errorf("failed to store tokens: %w", err)
	}
	if _, err := sess.Store().SetUser(ctx, result.User); err != nil {
		a.logger.Warn("Auth service: failed to cache user", "error", err.Error())
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return model.NewValidationError("email", "is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return model.NewValidationError("email", "is not a valid address")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return model.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	return nil
}

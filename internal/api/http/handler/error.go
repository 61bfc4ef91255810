package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/fintrack-web/internal/api/http/respond"
	"github.com/dtroode/fintrack-web/internal/model"
)

// errorStatus maps a use case error to an HTTP status, a stable code and a safe message.
func errorStatus(err error) (int, string, string) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "invalid_argument", validationErr.Error()
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials", "invalid email or password"
	case errors.Is(err, model.ErrSessionExpired):
		return http.StatusUnauthorized, "session_expired", "session expired"
	case errors.Is(err, model.ErrEmailTaken):
		return http.StatusConflict, "email_taken", "email is already registered"
	}

	switch code := model.StatusCodeOf(err); {
	case code == http.StatusUnauthorized:
		return http.StatusUnauthorized, "session_expired", "session expired"
	case code == http.StatusNotFound:
		return http.StatusNotFound, "not_found", "not found"
	case code != 0:
		return http.StatusBadGateway, "bad_gateway", "backend request failed"
	}

	return http.StatusInternalServerError, "internal", "internal server error"
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := errorStatus(err)
	respond.Error(w, r, status, code, message)
}

// sessionLost reports whether err means the user has to sign in again.
func sessionLost(err error) bool {
	return errors.Is(err, model.ErrSessionExpired) || model.IsUnauthorized(err)
}

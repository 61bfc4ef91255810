package handler

import (
	"net/http"

	"github.com/dtroode/fintrack-web/internal/api/http/respond"
)

func Health(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GitMuhammadAli/song/internal/logger"
	"github.com/GitMuhammadAli/song/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleError translates domain errors to HTTP status codes. Anything
// outside the domain taxonomy is logged and reduced to a generic 500 so no
// internal detail leaks to the caller.
func handleError(w http.ResponseWriter, logger *logger.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrUnauthenticated), errors.Is(err, model.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrEmailTaken):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "Forbidden"})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Song not found"})
	default:
		logger.Error("HTTP handler: internal error", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

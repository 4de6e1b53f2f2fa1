package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/kozaktomas/face-verify/internal/match"
)

// errGenericMessage is the uniform failure body. Internal error detail
// is logged server-side only and never leaks to the caller.
const errGenericMessage = "An error occurred"

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError logs the failure for operators and answers with
// the generic error body. Requests arriving before the recognizer
// models finished loading get 503 instead of 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log.Ctx(r.Context()).Error().Err(err).Msg("comparison request failed")

	if errors.Is(err, match.ErrNotReady) {
		respondError(w, http.StatusServiceUnavailable, "Service is not ready")
		return
	}
	respondError(w, http.StatusInternalServerError, errGenericMessage)
}

// HealthCheck handles the liveness endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vivi-ai/persona-engine/internal/generation"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// writeGenerationError maps a failed generation to a distinguishable failure
// response. The caller never gets a 200 with empty text.
func writeGenerationError(w http.ResponseWriter, err error) {
	var genErr *generation.Error
	if errors.As(err, &genErr) {
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":    "content generation failed",
			"provider": genErr.Provider,
		})
		return
	}
	writeError(w, http.StatusBadGateway, "content generation failed")
}

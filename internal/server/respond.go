package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mmynk/tripcraft/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps any error onto the stable error taxonomy and emits the
// {code, description, detail} body with the matching status.
func writeError(w http.ResponseWriter, err error) {
	apiErr := apperr.From(err)
	if apiErr.HTTPStatus() >= http.StatusInternalServerError {
		slog.Error("Request failed", "code", apiErr.Code, "error", err)
	}
	writeJSON(w, apiErr.HTTPStatus(), apiErr)
}

// decodeBody parses a JSON request body into dst, mapping malformed input to
// INVALID_REQUEST.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.InvalidRequest("malformed request body")
	}
	return nil
}

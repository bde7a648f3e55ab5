package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/jhavlik/pricebook/internal/domain"
	"github.com/jhavlik/pricebook/internal/sanitize"
)

// writeJSON serializes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends the standard {"error": message} failure body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// serviceError maps a service-layer failure onto its HTTP status and body.
// Name-resolution failures during entry creation are the one place where
// ErrNotFound means a bad request rather than a missing resource; those
// handlers map the error themselves before falling back here.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, errorMessage(err))
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrReference):
		writeError(w, http.StatusBadRequest, errorMessage(err))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, errorMessage(err))
	default:
		writeError(w, http.StatusInternalServerError, errorMessage(err))
	}
}

// errorMessage strips the "service.X.Op: " / "repo.X.Op: " prefixes that
// the lower layers wrap around errors, leaving the human-readable part.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for strings.HasPrefix(msg, "service.") || strings.HasPrefix(msg, "repo.") {
		idx := strings.Index(msg, ": ")
		if idx < 0 {
			break
		}
		msg = msg[idx+2:]
	}
	return msg
}

// decodeSanitized reads the request body, runs the underscore sanitizer
// over the decoded JSON tree, and re-decodes the cleaned tree into dst.
// Every inbound body goes through this path so underscore placeholders are
// blanked before strict typed decoding can reject them.
func decodeSanitized(r *http.Request, dst any) error {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return err
	}
	cleaned, err := json.Marshal(sanitize.Clean(tree))
	if err != nil {
		return err
	}
	return json.Unmarshal(cleaned, dst)
}

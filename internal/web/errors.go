package web

// errors.go maps service and store errors onto the API's structured JSON
// responses. Validation and duplicate errors carry enough detail (per-row
// messages, row numbers) for the caller to fix their input; infrastructure
// failures are logged in full server-side and surfaced as a generic 500.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Harshit-gupta-45107/User-Management/internal/core"
	"github.com/Harshit-gupta-45107/User-Management/internal/logging"
	"github.com/Harshit-gupta-45107/User-Management/internal/storage"
)

// writeJSON encodes v and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError translates an error from the service layer into the
// appropriate status code and payload shape.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErr *core.FieldValidationError
	var batchErr *core.BatchValidationError
	var dupFileErr *core.DuplicateInFileError

	switch {
	case errors.As(err, &fieldErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErr.Errors})

	case errors.Is(err, storage.ErrDuplicateEmail):
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": []string{"Email already exists"}})

	case errors.As(err, &batchErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Validation errors found in uploaded file",
			"details": batchErr.Rows,
		})

	case errors.As(err, &dupFileErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Duplicate emails found in file",
			"details": dupFileErr.Rows,
		})

	case errors.Is(err, core.ErrDuplicateInStore):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "One or more emails already exist in the database",
		})

	case errors.Is(err, core.ErrEmptyBatch):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "File is empty or invalid format",
		})

	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})

	default:
		logging.FromContext(r.Context()).Error("request failed",
			"path", r.URL.Path,
			"method", r.Method,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}

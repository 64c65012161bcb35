package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/events-backend/app/internal/events"
)

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// writeError writes a single-message JSON error body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON parses the request body into v. Returns false after writing a
// 400 when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeEngineError maps the rules-engine taxonomy onto HTTP status codes.
// Validation failures carry field-level detail; anything outside the
// taxonomy is a 500.
func writeEngineError(w http.ResponseWriter, err error) {
	var validation events.ValidationError
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": validation})
	case errors.Is(err, events.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, events.ErrInvalidStatus.Error())
	case errors.Is(err, events.ErrInvalidRating):
		writeError(w, http.StatusBadRequest, events.ErrInvalidRating.Error())
	case errors.Is(err, events.ErrForbidden):
		writeError(w, http.StatusForbidden, "you are not allowed to perform this action")
	case errors.Is(err, events.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		log.Printf("Internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

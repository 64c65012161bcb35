package handlers

import (
	"database/sql"
	"net/http"

	"github.com/events-backend/app/internal/events"
)

// SubmitRSVP creates or updates the caller's RSVP for an event. Responds 201
// when a new RSVP row was created and 200 when an existing one was updated.
func SubmitRSVP(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseID(w, r, "eventID")
		if !ok {
			return
		}
		var req struct {
			Status string `json:"status"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}

		rsvp, created, err := events.SetRSVP(db, userFromContext(r), eventID, req.Status)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, rsvp)
	}
}

// UpdateRSVP changes the status of an existing RSVP. Only the RSVP owner or
// the event organizer may do this.
func UpdateRSVP(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseID(w, r, "eventID")
		if !ok {
			return
		}
		targetUserID, ok := parseID(w, r, "userID")
		if !ok {
			return
		}
		var req struct {
			Status string `json:"status"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}

		rsvp, err := events.UpdateRSVP(db, userFromContext(r), eventID, targetUserID, req.Status)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rsvp)
	}
}

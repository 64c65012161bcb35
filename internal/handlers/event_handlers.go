package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/events-backend/app/internal/database"
	"github.com/events-backend/app/internal/events"
	"github.com/events-backend/app/internal/models"
)

// parseID extracts a numeric path value. Returns false after writing a 400
// when the value is not a valid ID.
func parseID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// ListEvents returns the events visible to the caller, newest created first,
// each with its RSVP counts, review count and the caller's own RSVP.
func ListEvents(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer := userFromContext(r)
		visible, err := events.VisibleEvents(db, viewer)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		summaries := make([]*events.Summary, 0, len(visible))
		for _, event := range visible {
			summary, err := events.Summarize(db, viewer, event)
			if err != nil {
				writeEngineError(w, err)
				return
			}
			summaries = append(summaries, summary)
		}
		writeJSON(w, http.StatusOK, summaries)
	}
}

// CreateEvent creates an event owned by the caller. Unknown invited
// usernames don't fail the request; they come back in "warnings".
func CreateEvent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in events.EventInput
		if !decodeJSON(w, r, &in) {
			return
		}

		event, warnings, err := events.CreateEvent(db, userFromContext(r), in)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"event":    event,
			"warnings": warnings,
		})
	}
}

// GetEvent returns one event's detail: the event, its aggregates and its
// reviews. Private events 403 for callers outside the invite circle.
func GetEvent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseID(w, r, "eventID")
		if !ok {
			return
		}

		viewer := userFromContext(r)
		event, err := events.GetEvent(db, viewer, eventID)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		summary, err := events.Summarize(db, viewer, event)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		reviews, err := database.GetReviewsForEvent(db, eventID)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		if reviews == nil {
			reviews = []*models.Review{}
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"event":        summary.Event,
			"rsvp_counts":  summary.RSVPCounts,
			"review_count": summary.ReviewCount,
			"user_rsvp":    summary.UserRSVP,
			"reviews":      reviews,
		})
	}
}

// UpdateEvent overwrites an event. Organizer only.
func UpdateEvent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseID(w, r, "eventID")
		if !ok {
			return
		}
		var in events.EventInput
		if !decodeJSON(w, r, &in) {
			return
		}

		event, warnings, err := events.UpdateEvent(db, userFromContext(r), eventID, in)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"event":    event,
			"warnings": warnings,
		})
	}
}

// DeleteEvent deletes an event and its RSVPs, reviews and invites.
// Organizer only.
func DeleteEvent(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseID(w, r, "eventID")
		if !ok {
			return
		}
		if err := events.DeleteEvent(db, userFromContext(r), eventID); err != nil {
			writeEngineError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/events-backend/app/internal/events"
	"github.com/events-backend/app/internal/models"
)

// ListReviews returns an event's reviews, newest first, subject to the
// event's visibility rule.
func ListReviews(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseID(w, r, "eventID")
		if !ok {
			return
		}

		reviews, err := events.ListReviews(db, userFromContext(r), eventID)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		if reviews == nil {
			reviews = []*models.Review{}
		}
		writeJSON(w, http.StatusOK, reviews)
	}
}

// PostReview creates or updates the caller's review for an event. Responds
// 201 when a new review was created and 200 when an existing one was
// overwritten.
func PostReview(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseID(w, r, "eventID")
		if !ok {
			return
		}
		var req struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}

		review, created, err := events.PostReview(db, userFromContext(r), eventID, req.Rating, req.Comment)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, review)
	}
}

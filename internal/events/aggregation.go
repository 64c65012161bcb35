package events

import (
	"database/sql"
	"errors"

	"github.com/events-backend/app/internal/database"
	"github.com/events-backend/app/internal/models"
)

// Summary bundles an event with its read-time aggregates for list and detail
// views. Aggregates are recomputed on every call; there is no cache.
type Summary struct {
	Event       *models.Event     `json:"event"`
	RSVPCounts  models.RSVPCounts `json:"rsvp_counts"`
	ReviewCount int               `json:"review_count"`
	UserRSVP    string            `json:"user_rsvp,omitempty"`
}

// RSVPCounts tallies the event's RSVPs by status. All three keys are always
// present even when zero.
func RSVPCounts(db *sql.DB, eventID int64) (models.RSVPCounts, error) {
	return database.CountRSVPsByStatus(db, eventID)
}

// ReviewCount returns the number of reviews on the event.
func ReviewCount(db *sql.DB, eventID int64) (int, error) {
	return database.CountReviewsForEvent(db, eventID)
}

// CurrentUserRSVP returns the user's RSVP status for the event, or ok=false
// when the user hasn't RSVP'd.
func CurrentUserRSVP(db *sql.DB, eventID, userID int64) (string, bool, error) {
	rsvp, err := database.GetRSVPByEventAndUser(db, eventID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return rsvp.Status, true, nil
}

// Summarize computes the aggregates for one event on behalf of viewer (nil
// for anonymous).
func Summarize(db *sql.DB, viewer *models.User, event *models.Event) (*Summary, error) {
	counts, err := RSVPCounts(db, event.ID)
	if err != nil {
		return nil, err
	}
	reviewCount, err := ReviewCount(db, event.ID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Event:       event,
		RSVPCounts:  counts,
		ReviewCount: reviewCount,
	}
	if viewer != nil {
		status, ok, err := CurrentUserRSVP(db, event.ID, viewer.ID)
		if err != nil {
			return nil, err
		}
		if ok {
			summary.UserRSVP = status
		}
	}
	return summary, nil
}

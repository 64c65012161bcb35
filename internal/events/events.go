package events

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/events-backend/app/internal/database"
	"github.com/events-backend/app/internal/models"
)

// EventInput is the write payload for creating or updating an event.
// InvitedUsernames only matters for private events but is stored either way,
// mirroring how the invite list behaves on a later flip to private.
type EventInput struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	IsPublic         bool      `json:"is_public"`
	InvitedUsernames []string  `json:"invited_usernames"`
}

func validate(in EventInput) error {
	v := ValidationError{}
	if strings.TrimSpace(in.Title) == "" {
		v["title"] = "title is required."
	}
	if in.StartTime.IsZero() {
		v["start_time"] = "start_time is required."
	}
	if in.EndTime.IsZero() {
		v["end_time"] = "end_time is required."
	}
	if !in.StartTime.IsZero() && !in.EndTime.IsZero() && !in.StartTime.Before(in.EndTime) {
		v["start_time"] = "start_time must be before end_time."
	}
	if len(v) > 0 {
		return v
	}
	return nil
}

// resolveInvitees maps usernames to user IDs. Unknown usernames are skipped
// and reported as warnings rather than failing the whole operation.
func resolveInvitees(db *sql.DB, usernames []string) ([]int64, []string, error) {
	var ids []int64
	var warnings []string
	for _, raw := range usernames {
		username := strings.TrimSpace(raw)
		if username == "" {
			continue
		}
		user, err := database.GetUserByUsername(db, username)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				warnings = append(warnings, fmt.Sprintf("user %q not found, ignored", username))
				continue
			}
			return nil, nil, err
		}
		ids = append(ids, user.ID)
	}
	return ids, warnings, nil
}

// CreateEvent validates the input, resolves the invite list and stores a new
// event owned by organizer. Warnings name invited usernames that don't exist.
func CreateEvent(db *sql.DB, organizer *models.User, in EventInput) (*models.Event, []string, error) {
	if organizer == nil {
		return nil, nil, ErrForbidden
	}
	if err := validate(in); err != nil {
		return nil, nil, err
	}

	invitedIDs, warnings, err := resolveInvitees(db, in.InvitedUsernames)
	if err != nil {
		return nil, nil, err
	}

	event := &models.Event{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		OrganizerID: organizer.ID,
		Location:    in.Location,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		IsPublic:    in.IsPublic,
	}
	created, err := database.CreateEvent(db, event, invitedIDs)
	if err != nil {
		return nil, nil, err
	}
	return created, warnings, nil
}

// UpdateEvent overwrites an event. Only the organizer may edit; the invite
// list is replaced wholesale from the input.
func UpdateEvent(db *sql.DB, actor *models.User, eventID int64, in EventInput) (*models.Event, []string, error) {
	event, err := database.GetEventByID(db, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if !event.IsOrganizer(actor) {
		return nil, nil, ErrForbidden
	}
	if err := validate(in); err != nil {
		return nil, nil, err
	}

	invitedIDs, warnings, err := resolveInvitees(db, in.InvitedUsernames)
	if err != nil {
		return nil, nil, err
	}

	event.Title = strings.TrimSpace(in.Title)
	event.Description = in.Description
	event.Location = in.Location
	event.StartTime = in.StartTime
	event.EndTime = in.EndTime
	event.IsPublic = in.IsPublic

	updated, err := database.UpdateEvent(db, event, invitedIDs)
	if err != nil {
		return nil, nil, err
	}
	return updated, warnings, nil
}

// DeleteEvent removes an event and, via cascade, its invites, RSVPs and
// reviews. Only the organizer may delete.
func DeleteEvent(db *sql.DB, actor *models.User, eventID int64) error {
	event, err := database.GetEventByID(db, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if !event.IsOrganizer(actor) {
		return ErrForbidden
	}
	return database.DeleteEvent(db, eventID)
}

// GetEvent fetches an event on behalf of viewer (nil for anonymous) and
// enforces the visibility rule.
func GetEvent(db *sql.DB, viewer *models.User, eventID int64) (*models.Event, error) {
	event, err := database.GetEventByID(db, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !event.VisibleTo(viewer) {
		return nil, ErrForbidden
	}
	return event, nil
}

// VisibleEvents lists the events viewer may see, newest created first.
// Anonymous viewers get public events only; authenticated viewers get the
// deduplicated union of public, invited and organized events.
func VisibleEvents(db *sql.DB, viewer *models.User) ([]*models.Event, error) {
	if viewer == nil {
		return database.ListPublicEvents(db)
	}
	return database.ListEventsForViewer(db, viewer.ID)
}

// SetRSVP upserts user's RSVP for the event and reports whether a new row
// was created (drives 201 vs 200 at the boundary).
func SetRSVP(db *sql.DB, user *models.User, eventID int64, status string) (*models.RSVP, bool, error) {
	event, err := database.GetEventByID(db, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}
	if user == nil || !event.ActionableBy(user) {
		return nil, false, ErrForbidden
	}
	if !models.ValidRSVPStatus(status) {
		return nil, false, ErrInvalidStatus
	}

	created, err := database.CreateOrUpdateRSVP(db, eventID, user.ID, status)
	if err != nil {
		return nil, false, err
	}
	rsvp, err := database.GetRSVPByEventAndUser(db, eventID, user.ID)
	if err != nil {
		return nil, false, err
	}
	return rsvp, created, nil
}

// UpdateRSVP changes the status of targetUserID's existing RSVP. The actor
// must be the RSVP owner or the event organizer; the target row must exist.
func UpdateRSVP(db *sql.DB, actor *models.User, eventID, targetUserID int64, status string) (*models.RSVP, error) {
	event, err := database.GetEventByID(db, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := database.GetRSVPByEventAndUser(db, eventID, targetUserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actor == nil || (actor.ID != targetUserID && !event.IsOrganizer(actor)) {
		return nil, ErrForbidden
	}
	if !models.ValidRSVPStatus(status) {
		return nil, ErrInvalidStatus
	}

	if err := database.UpdateRSVPStatus(db, eventID, targetUserID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return database.GetRSVPByEventAndUser(db, eventID, targetUserID)
}

// PostReview upserts user's review for the event. Any authenticated user who
// can see the event may review it; there is deliberately no must-have-RSVPd
// gate. Returns whether a new row was created.
func PostReview(db *sql.DB, user *models.User, eventID int64, rating int, comment string) (*models.Review, bool, error) {
	event, err := database.GetEventByID(db, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}
	if user == nil || !event.ActionableBy(user) {
		return nil, false, ErrForbidden
	}
	if !models.ValidRating(rating) {
		return nil, false, ErrInvalidRating
	}

	created, err := database.CreateOrUpdateReview(db, eventID, user.ID, rating, strings.TrimSpace(comment))
	if err != nil {
		return nil, false, err
	}
	review, err := database.GetReviewByEventAndUser(db, eventID, user.ID)
	if err != nil {
		return nil, false, err
	}
	return review, created, nil
}

// ListReviews returns the event's reviews, newest first, subject to the
// visibility rule.
func ListReviews(db *sql.DB, viewer *models.User, eventID int64) ([]*models.Review, error) {
	if _, err := GetEvent(db, viewer, eventID); err != nil {
		return nil, err
	}
	return database.GetReviewsForEvent(db, eventID)
}

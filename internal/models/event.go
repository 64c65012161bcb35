package models

import "time"

// Event is created by an organizer. Private events are only reachable by the
// organizer and the users on the invite list; the invite list is irrelevant
// when IsPublic is set.
type Event struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	OrganizerID    int64     `json:"organizer_id"`
	OrganizerName  string    `json:"organizer_username"`
	Location       string    `json:"location"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	IsPublic       bool      `json:"is_public"`
	InvitedUserIDs []int64   `json:"invited_user_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// VisibleTo reports whether viewer may see the event. viewer is nil for
// anonymous callers; anonymous access to a private event is denied before
// any membership check.
func (e *Event) VisibleTo(viewer *User) bool {
	if e.IsPublic {
		return true
	}
	if viewer == nil {
		return false
	}
	if viewer.ID == e.OrganizerID {
		return true
	}
	for _, id := range e.InvitedUserIDs {
		if id == viewer.ID {
			return true
		}
	}
	return false
}

// ActionableBy reports whether viewer may RSVP to or review the event.
// The rule is identical to VisibleTo; it exists as its own predicate so the
// two gates can diverge without touching call sites.
func (e *Event) ActionableBy(viewer *User) bool {
	return e.VisibleTo(viewer)
}

// IsOrganizer reports whether viewer owns the event. Only the organizer may
// edit or delete it.
func (e *Event) IsOrganizer(viewer *User) bool {
	return viewer != nil && viewer.ID == e.OrganizerID
}

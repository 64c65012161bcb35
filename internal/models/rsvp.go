package models

import "time"

// RSVP status labels as stored. "Not Going" keeps its space; aggregation
// normalizes it to the NotGoing counter key.
const (
	RSVPStatusGoing    = "Going"
	RSVPStatusMaybe    = "Maybe"
	RSVPStatusNotGoing = "Not Going"
)

// ValidRSVPStatus reports whether s is one of the accepted status labels.
func ValidRSVPStatus(s string) bool {
	switch s {
	case RSVPStatusGoing, RSVPStatusMaybe, RSVPStatusNotGoing:
		return true
	}
	return false
}

// RSVP is a user's attendance intent for an event. At most one row exists
// per (event, user); re-RSVPing overwrites the status in place.
type RSVP struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// RSVPCounts tallies RSVPs by status. All three fields are always present in
// the JSON output, zero or not.
type RSVPCounts struct {
	Going    int `json:"Going"`
	Maybe    int `json:"Maybe"`
	NotGoing int `json:"NotGoing"`
}

// Total returns the number of RSVP rows behind the tally.
func (c RSVPCounts) Total() int {
	return c.Going + c.Maybe + c.NotGoing
}

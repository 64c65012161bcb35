package models

import "time"

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is within the accepted rating range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// Review is a user's rating and comment for an event. At most one row exists
// per (event, user); posting again overwrites rating and comment in place.
type Review struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

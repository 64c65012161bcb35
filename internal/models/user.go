package models

import "time"

// User represents a registered account. Handlers treat a nil *User as an
// anonymous caller.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserProfile extends a User with display fields. A profile is created
// lazily the first time it is read, never by a side effect of registration.
type UserProfile struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
}

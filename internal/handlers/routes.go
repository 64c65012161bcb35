package handlers

import (
	"database/sql"
	"net/http"
	"time"
)

// NewRouter builds the full route table. Listing and detail endpoints accept
// anonymous callers (visibility rules decide what they see); everything that
// mutates requires a session.
func NewRouter(db *sql.DB, sessionTTL time.Duration) *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /register", Register(db))
	mux.HandleFunc("POST /login", Login(db, sessionTTL))
	mux.HandleFunc("POST /logout", Logout(db))
	mux.HandleFunc("GET /whoami", RequireAuth(db, WhoAmI()))

	// Events
	mux.HandleFunc("GET /events", WithOptionalAuth(db, ListEvents(db)))
	mux.HandleFunc("POST /events", RequireAuth(db, CreateEvent(db)))
	mux.HandleFunc("GET /events/{eventID}", WithOptionalAuth(db, GetEvent(db)))
	mux.HandleFunc("PUT /events/{eventID}", RequireAuth(db, UpdateEvent(db)))
	mux.HandleFunc("DELETE /events/{eventID}", RequireAuth(db, DeleteEvent(db)))

	// RSVPs
	mux.HandleFunc("POST /events/{eventID}/rsvp", RequireAuth(db, SubmitRSVP(db)))
	mux.HandleFunc("PATCH /events/{eventID}/rsvp/{userID}", RequireAuth(db, UpdateRSVP(db)))

	// Reviews
	mux.HandleFunc("GET /events/{eventID}/reviews", WithOptionalAuth(db, ListReviews(db)))
	mux.HandleFunc("POST /events/{eventID}/reviews", RequireAuth(db, PostReview(db)))

	// Profile
	mux.HandleFunc("GET /profile", RequireAuth(db, GetProfile(db)))
	mux.HandleFunc("PUT /profile", RequireAuth(db, UpdateProfile(db)))

	return mux
}

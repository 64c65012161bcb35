package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/events-backend/app/internal/database"
	"github.com/events-backend/app/internal/models"
)

const sessionCookieName = "session_token"

// userKeyType keeps the context key private to this package.
type userKeyType string

const userKey userKeyType = "currentUser"

// currentUserFromRequest resolves the session cookie to a user. A missing
// cookie or an invalid/expired session reads as anonymous (nil, nil); only
// real database failures return an error.
func currentUserFromRequest(db *sql.DB, r *http.Request) (*models.User, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, nil // no cookie, anonymous
	}
	user, err := database.GetUserBySessionToken(db, cookie.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// userFromContext returns the user placed by the middleware, nil for
// anonymous requests.
func userFromContext(r *http.Request) *models.User {
	user, _ := r.Context().Value(userKey).(*models.User)
	return user
}

// RequireAuth rejects requests without a valid session and passes the
// resolved user to the next handler via the request context.
func RequireAuth(db *sql.DB, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUserFromRequest(db, r)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "error processing authentication")
			return
		}
		if user == nil {
			writeError(w, http.StatusUnauthorized, "you must be logged in")
			return
		}
		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// WithOptionalAuth resolves the session if present but lets anonymous
// requests through. Listing and detail endpoints use this: visibility rules
// decide what an anonymous caller sees, not the middleware.
func WithOptionalAuth(db *sql.DB, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUserFromRequest(db, r)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "error processing authentication")
			return
		}
		if user != nil {
			r = r.WithContext(context.WithValue(r.Context(), userKey, user))
		}
		next.ServeHTTP(w, r)
	}
}

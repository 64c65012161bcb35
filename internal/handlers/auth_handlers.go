package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/events-backend/app/internal/database"
)

// Register handles account creation.
func Register(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}

		req.Username = strings.TrimSpace(req.Username)
		req.Email = strings.TrimSpace(req.Email)
		if req.Username == "" || req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "username, email and password are required")
			return
		}

		// Check if the username is already taken.
		_, err := database.GetUserByUsername(db, req.Username)
		if err == nil {
			writeError(w, http.StatusConflict, "username already registered")
			return
		}
		if !errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusInternalServerError, "database error")
			return
		}

		user, err := database.CreateUser(db, req.Username, req.Email, req.Password)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not create user")
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

// Login verifies credentials and issues a session cookie.
func Login(db *sql.DB, sessionTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := database.GetUserByUsername(db, strings.TrimSpace(req.Username))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusUnauthorized, "invalid username or password")
			} else {
				writeError(w, http.StatusInternalServerError, "database error")
			}
			return
		}
		if err := database.VerifyPassword(user.PasswordHash, req.Password); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}

		token, err := database.CreateSession(db, user.ID, sessionTTL)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not create session")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(sessionTTL),
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, user)
	}
}

// Logout deletes the session and expires the cookie.
func Logout(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if err := database.DeleteSession(db, cookie.Value); err != nil {
				writeError(w, http.StatusInternalServerError, "could not delete session")
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    "",
				Path:     "/",
				Expires:  time.Unix(0, 0),
				HttpOnly: true,
				Secure:   r.TLS != nil,
				SameSite: http.SameSiteLaxMode,
			})
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
	}
}

// WhoAmI returns the authenticated user.
func WhoAmI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, userFromContext(r))
	}
}

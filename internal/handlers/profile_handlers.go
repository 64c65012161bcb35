package handlers

import (
	"database/sql"
	"net/http"

	"github.com/events-backend/app/internal/database"
)

// GetProfile returns the caller's profile, creating an empty one on first
// read. There is no registration hook; this read is the only place profiles
// come into existence.
func GetProfile(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := database.EnsureProfile(db, userFromContext(r).ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not load profile")
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// UpdateProfile overwrites the caller's profile display fields.
func UpdateProfile(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FullName string `json:"full_name"`
			Bio      string `json:"bio"`
			Location string `json:"location"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}

		user := userFromContext(r)
		profile, err := database.EnsureProfile(db, user.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not load profile")
			return
		}
		profile.FullName = req.FullName
		profile.Bio = req.Bio
		profile.Location = req.Location

		updated, err := database.UpdateProfile(db, profile)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not update profile")
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

package database

import (
	"database/sql"

	"github.com/events-backend/app/internal/models"
)

// EnsureProfile returns the user's profile, creating an empty one first if
// none exists. Profiles are made on read, not by a registration hook.
func EnsureProfile(db *sql.DB, userID int64) (*models.UserProfile, error) {
	_, err := db.Exec(
		"INSERT INTO user_profiles(user_id) VALUES(?) ON CONFLICT(user_id) DO NOTHING",
		userID,
	)
	if err != nil {
		return nil, err
	}
	return getProfileByUserID(db, userID)
}

// UpdateProfile overwrites the profile's display fields.
func UpdateProfile(db *sql.DB, profile *models.UserProfile) (*models.UserProfile, error) {
	_, err := db.Exec(
		"UPDATE user_profiles SET full_name = ?, bio = ?, location = ? WHERE user_id = ?",
		profile.FullName, profile.Bio, profile.Location, profile.UserID,
	)
	if err != nil {
		return nil, err
	}
	return getProfileByUserID(db, profile.UserID)
}

func getProfileByUserID(db *sql.DB, userID int64) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	row := db.QueryRow(
		"SELECT id, user_id, full_name, bio, location FROM user_profiles WHERE user_id = ?",
		userID,
	)
	err := row.Scan(&profile.ID, &profile.UserID, &profile.FullName, &profile.Bio, &profile.Location)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

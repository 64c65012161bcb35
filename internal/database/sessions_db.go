package database

import (
	"database/sql"
	"time"

	"github.com/events-backend/app/internal/models"
	"github.com/google/uuid"
)

// CreateSession stores a new session for the user and returns its token.
func CreateSession(db *sql.DB, userID int64, ttl time.Duration) (string, error) {
	sessionID, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	token := sessionID.String()

	_, err = db.Exec(
		"INSERT INTO sessions(token, user_id, expires_at) VALUES(?, ?, ?)",
		token, userID, time.Now().Add(ttl),
	)
	if err != nil {
		return "", err
	}
	return token, nil
}

// GetUserBySessionToken resolves a session token to its user. Expired or
// unknown tokens return sql.ErrNoRows; expired rows are cleaned up as a side
// effect.
func GetUserBySessionToken(db *sql.DB, token string) (*models.User, error) {
	var userID int64
	var expiresAt time.Time
	row := db.QueryRow("SELECT user_id, expires_at FROM sessions WHERE token = ?", token)
	if err := row.Scan(&userID, &expiresAt); err != nil {
		return nil, err
	}

	if time.Now().After(expiresAt) {
		_, _ = db.Exec("DELETE FROM sessions WHERE token = ?", token)
		return nil, sql.ErrNoRows
	}

	return GetUserByID(db, userID)
}

// DeleteSession removes a session. Deleting an unknown token is a no-op.
func DeleteSession(db *sql.DB, token string) error {
	_, err := db.Exec("DELETE FROM sessions WHERE token = ?", token)
	return err
}

package database

import (
	"database/sql"

	"github.com/events-backend/app/internal/models"
)

// CreateOrUpdateRSVP upserts the (event, user) RSVP row and reports whether a
// new row was created. The insert ignores a conflict on the unique
// (event_id, user_id) index and falls back to an update, so two concurrent
// calls can never produce two rows. created_at is only set on insert.
func CreateOrUpdateRSVP(db *sql.DB, eventID, userID int64, status string) (bool, error) {
	res, err := db.Exec(
		"INSERT INTO rsvps(event_id, user_id, status) VALUES(?, ?, ?) ON CONFLICT(event_id, user_id) DO NOTHING",
		eventID, userID, status,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 1 {
		return true, nil
	}

	_, err = db.Exec(
		"UPDATE rsvps SET status = ? WHERE event_id = ? AND user_id = ?",
		status, eventID, userID,
	)
	return false, err
}

// UpdateRSVPStatus overwrites the status of an existing RSVP row in place.
// Returns sql.ErrNoRows when no row exists for (event, user).
func UpdateRSVPStatus(db *sql.DB, eventID, userID int64, status string) error {
	res, err := db.Exec(
		"UPDATE rsvps SET status = ? WHERE event_id = ? AND user_id = ?",
		status, eventID, userID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetRSVPByEventAndUser retrieves a specific user's RSVP for an event,
// including the username for display.
func GetRSVPByEventAndUser(db *sql.DB, eventID, userID int64) (*models.RSVP, error) {
	rsvp := &models.RSVP{}
	row := db.QueryRow(`
		SELECT r.id, r.event_id, r.user_id, u.username, r.status, r.created_at
		FROM rsvps r
		JOIN users u ON r.user_id = u.id
		WHERE r.event_id = ? AND r.user_id = ?
	`, eventID, userID)
	err := row.Scan(&rsvp.ID, &rsvp.EventID, &rsvp.UserID, &rsvp.Username, &rsvp.Status, &rsvp.CreatedAt)
	if err != nil {
		return nil, err // includes sql.ErrNoRows if not found
	}
	return rsvp, nil
}

// GetRSVPsForEvent retrieves all RSVPs for an event, newest first.
func GetRSVPsForEvent(db *sql.DB, eventID int64) ([]*models.RSVP, error) {
	rows, err := db.Query(`
		SELECT r.id, r.event_id, r.user_id, u.username, r.status, r.created_at
		FROM rsvps r
		JOIN users u ON r.user_id = u.id
		WHERE r.event_id = ?
		ORDER BY r.created_at DESC, r.id DESC
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rsvps []*models.RSVP
	for rows.Next() {
		rsvp := &models.RSVP{}
		err := rows.Scan(&rsvp.ID, &rsvp.EventID, &rsvp.UserID, &rsvp.Username, &rsvp.Status, &rsvp.CreatedAt)
		if err != nil {
			return nil, err
		}
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, rows.Err()
}

// CountRSVPsByStatus tallies the event's RSVP rows by status. The stored
// "Not Going" label maps to the NotGoing counter so consumers never deal
// with the space-containing literal.
func CountRSVPsByStatus(db *sql.DB, eventID int64) (models.RSVPCounts, error) {
	var counts models.RSVPCounts
	rows, err := db.Query("SELECT status FROM rsvps WHERE event_id = ?", eventID)
	if err != nil {
		return counts, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return counts, err
		}
		switch status {
		case models.RSVPStatusGoing:
			counts.Going++
		case models.RSVPStatusMaybe:
			counts.Maybe++
		case models.RSVPStatusNotGoing:
			counts.NotGoing++
		}
	}
	return counts, rows.Err()
}

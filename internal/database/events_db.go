package database

import (
	"database/sql"

	"github.com/events-backend/app/internal/models"
)

// CreateEvent inserts a new event and its invite list in one transaction.
func CreateEvent(db *sql.DB, event *models.Event, invitedUserIDs []int64) (*models.Event, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO events(title, description, organizer_id, location, start_time, end_time, is_public) VALUES(?, ?, ?, ?, ?, ?, ?)",
		event.Title, event.Description, event.OrganizerID, event.Location, event.StartTime, event.EndTime, event.IsPublic,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	for _, userID := range invitedUserIDs {
		if _, err = tx.Exec(
			"INSERT INTO event_invites(event_id, user_id) VALUES(?, ?) ON CONFLICT(event_id, user_id) DO NOTHING",
			id, userID,
		); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return GetEventByID(db, id)
}

// GetEventByID retrieves an event with its organizer username and invite list.
func GetEventByID(db *sql.DB, id int64) (*models.Event, error) {
	event := &models.Event{}
	row := db.QueryRow(`
		SELECT e.id, e.title, e.description, e.organizer_id, u.username, e.location,
		       e.start_time, e.end_time, e.is_public, e.created_at, e.updated_at
		FROM events e
		JOIN users u ON e.organizer_id = u.id
		WHERE e.id = ?
	`, id)
	err := row.Scan(
		&event.ID, &event.Title, &event.Description, &event.OrganizerID, &event.OrganizerName,
		&event.Location, &event.StartTime, &event.EndTime, &event.IsPublic, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err // includes sql.ErrNoRows if not found
	}

	event.InvitedUserIDs, err = GetInvitedUserIDs(db, id)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// GetInvitedUserIDs returns the IDs of all users invited to the event.
func GetInvitedUserIDs(db *sql.DB, eventID int64) ([]int64, error) {
	rows, err := db.Query("SELECT user_id FROM event_invites WHERE event_id = ? ORDER BY user_id", eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UpdateEvent overwrites the event's fields and replaces its invite list in
// one transaction. updated_at is bumped; created_at is untouched.
func UpdateEvent(db *sql.DB, event *models.Event, invitedUserIDs []int64) (*models.Event, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"UPDATE events SET title = ?, description = ?, location = ?, start_time = ?, end_time = ?, is_public = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		event.Title, event.Description, event.Location, event.StartTime, event.EndTime, event.IsPublic, event.ID,
	)
	if err != nil {
		return nil, err
	}

	if _, err = tx.Exec("DELETE FROM event_invites WHERE event_id = ?", event.ID); err != nil {
		return nil, err
	}
	for _, userID := range invitedUserIDs {
		if _, err = tx.Exec(
			"INSERT INTO event_invites(event_id, user_id) VALUES(?, ?) ON CONFLICT(event_id, user_id) DO NOTHING",
			event.ID, userID,
		); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return GetEventByID(db, event.ID)
}

// DeleteEvent removes the event. Invites, RSVPs and reviews go with it via
// foreign key cascade.
func DeleteEvent(db *sql.DB, id int64) error {
	res, err := db.Exec("DELETE FROM events WHERE id = ?", id)
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

const eventColumns = `
	SELECT DISTINCT e.id, e.title, e.description, e.organizer_id, u.username, e.location,
	       e.start_time, e.end_time, e.is_public, e.created_at, e.updated_at
	FROM events e
	JOIN users u ON e.organizer_id = u.id
`

// ListPublicEvents returns all public events, newest created first.
func ListPublicEvents(db *sql.DB) ([]*models.Event, error) {
	rows, err := db.Query(eventColumns+"WHERE e.is_public = 1 ORDER BY e.created_at DESC, e.id DESC")
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// ListEventsForViewer returns the deduplicated union of public events, events
// the viewer is invited to, and events the viewer organizes, newest created
// first with ties broken by id descending.
func ListEventsForViewer(db *sql.DB, viewerID int64) ([]*models.Event, error) {
	rows, err := db.Query(eventColumns+`
		LEFT JOIN event_invites i ON i.event_id = e.id AND i.user_id = ?
		WHERE e.is_public = 1 OR e.organizer_id = ? OR i.user_id IS NOT NULL
		ORDER BY e.created_at DESC, e.id DESC
	`, viewerID, viewerID)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// scanEvents drains rows into events. Invite lists are not loaded here;
// listings are already visibility-filtered by the query.
func scanEvents(rows *sql.Rows) ([]*models.Event, error) {
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.OrganizerID, &event.OrganizerName,
			&event.Location, &event.StartTime, &event.EndTime, &event.IsPublic, &event.CreatedAt, &event.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

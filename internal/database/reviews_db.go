package database

import (
	"database/sql"

	"github.com/events-backend/app/internal/models"
)

// CreateOrUpdateReview upserts the (event, user) review row and reports
// whether a new row was created. Same insert-or-ignore-then-update shape as
// the RSVP upsert; the unique (event_id, user_id) index enforces the
// one-review-per-user invariant under concurrent writers.
func CreateOrUpdateReview(db *sql.DB, eventID, userID int64, rating int, comment string) (bool, error) {
	res, err := db.Exec(
		"INSERT INTO reviews(event_id, user_id, rating, comment) VALUES(?, ?, ?, ?) ON CONFLICT(event_id, user_id) DO NOTHING",
		eventID, userID, rating, comment,
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
		"UPDATE reviews SET rating = ?, comment = ? WHERE event_id = ? AND user_id = ?",
		rating, comment, eventID, userID,
	)
	return false, err
}

// GetReviewByEventAndUser retrieves a specific user's review for an event.
func GetReviewByEventAndUser(db *sql.DB, eventID, userID int64) (*models.Review, error) {
	review := &models.Review{}
	row := db.QueryRow(`
		SELECT rv.id, rv.event_id, rv.user_id, u.username, rv.rating, rv.comment, rv.created_at
		FROM reviews rv
		JOIN users u ON rv.user_id = u.id
		WHERE rv.event_id = ? AND rv.user_id = ?
	`, eventID, userID)
	err := row.Scan(&review.ID, &review.EventID, &review.UserID, &review.Username, &review.Rating, &review.Comment, &review.CreatedAt)
	if err != nil {
		return nil, err // includes sql.ErrNoRows if not found
	}
	return review, nil
}

// GetReviewsForEvent retrieves all reviews for an event, newest first.
func GetReviewsForEvent(db *sql.DB, eventID int64) ([]*models.Review, error) {
	rows, err := db.Query(`
		SELECT rv.id, rv.event_id, rv.user_id, u.username, rv.rating, rv.comment, rv.created_at
		FROM reviews rv
		JOIN users u ON rv.user_id = u.id
		WHERE rv.event_id = ?
		ORDER BY rv.created_at DESC, rv.id DESC
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		review := &models.Review{}
		err := rows.Scan(&review.ID, &review.EventID, &review.UserID, &review.Username, &review.Rating, &review.Comment, &review.CreatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// CountReviewsForEvent returns the number of reviews for an event.
func CountReviewsForEvent(db *sql.DB, eventID int64) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM reviews WHERE event_id = ?", eventID).Scan(&count)
	return count, err
}

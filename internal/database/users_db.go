package database

import (
	"database/sql"

	"github.com/events-backend/app/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser hashes the password and inserts a new user into the database.
func CreateUser(db *sql.DB, username, email, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	stmt, err := db.Prepare("INSERT INTO users(username, email, password_hash) VALUES(?, ?, ?)")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(username, email, string(hashedPassword))
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	// Retrieve the user so DB defaults like created_at are populated.
	return GetUserByID(db, id)
}

// GetUserByID retrieves a user by their ID.
func GetUserByID(db *sql.DB, id int64) (*models.User, error) {
	user := &models.User{}
	row := db.QueryRow("SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, err // includes sql.ErrNoRows if not found
	}
	return user, nil
}

// GetUserByUsername retrieves a user by their username.
func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	row := db.QueryRow("SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, err // includes sql.ErrNoRows if not found
	}
	return user, nil
}

// VerifyPassword compares a stored hashed password with a plaintext password.
func VerifyPassword(hashedPassword string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

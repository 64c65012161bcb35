package database

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// sets up a fresh in-memory database with all migrations applied.
func setupTestDBForUsers(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	db, err := ConnectAndMigrate(":memory:", "migrations")
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	teardown := func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	}
	return db, teardown
}

func TestCreateUserAndGet(t *testing.T) {
	db, teardown := setupTestDBForUsers(t)
	defer teardown()

	user, err := CreateUser(db, "alice", "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if user.ID == 0 {
		t.Errorf("CreateUser() returned zero ID")
	}
	if user.Username != "alice" {
		t.Errorf("Username got = %v, want alice", user.Username)
	}
	if user.PasswordHash == "password123" || user.PasswordHash == "" {
		t.Errorf("Password was not hashed")
	}
	if user.CreatedAt.IsZero() {
		t.Errorf("CreatedAt is zero")
	}

	t.Run("GetUserByUsername", func(t *testing.T) {
		got, err := GetUserByUsername(db, "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername() error = %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("GetUserByUsername() ID got = %d, want %d", got.ID, user.ID)
		}
	})

	t.Run("GetUserByID", func(t *testing.T) {
		got, err := GetUserByID(db, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID() error = %v", err)
		}
		if got.Username != "alice" {
			t.Errorf("GetUserByID() username got = %v, want alice", got.Username)
		}
	})

	t.Run("VerifyPassword", func(t *testing.T) {
		if err := VerifyPassword(user.PasswordHash, "password123"); err != nil {
			t.Errorf("VerifyPassword() with correct password error = %v", err)
		}
		if err := VerifyPassword(user.PasswordHash, "wrong"); err == nil {
			t.Errorf("VerifyPassword() with wrong password expected error, got nil")
		}
	})

	t.Run("Duplicate username rejected", func(t *testing.T) {
		if _, err := CreateUser(db, "alice", "other@example.com", "pass"); err == nil {
			t.Errorf("CreateUser() with duplicate username expected error, got nil")
		}
	})

	t.Run("Unknown username", func(t *testing.T) {
		if _, err := GetUserByUsername(db, "ghost"); err != sql.ErrNoRows {
			t.Errorf("GetUserByUsername() for unknown user got err = %v, want sql.ErrNoRows", err)
		}
	})
}

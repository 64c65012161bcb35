package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/events-backend/app/internal/database"
	"github.com/events-backend/app/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// testServer holds a test server and its dependencies.
type testServer struct {
	server *httptest.Server
	db     *sql.DB
}

// setupTestServer initializes a full API server over an in-memory database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := database.ConnectAndMigrate(":memory:", "../database/migrations")
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	ts := httptest.NewServer(NewRouter(db, time.Hour))
	return &testServer{server: ts, db: db}
}

func (ts *testServer) Teardown() {
	ts.server.Close()
	ts.db.Close()
}

// newClient returns an HTTP client with its own cookie jar, so each test
// user keeps an independent session.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// doJSON issues a request with a JSON body and returns the response.
func doJSON(t *testing.T, client *http.Client, method, url string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}

// registerAndLogin creates a user through the API and returns a logged-in
// client together with the stored user.
func (ts *testServer) registerAndLogin(t *testing.T, username string) (*http.Client, *models.User) {
	t.Helper()
	client := newClient(t)

	resp := doJSON(t, client, http.MethodPost, ts.server.URL+"/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s status = %d, want %d", username, resp.StatusCode, http.StatusCreated)
	}

	resp = doJSON(t, client, http.MethodPost, ts.server.URL+"/login", map[string]string{
		"username": username,
		"password": "password",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s status = %d, want %d", username, resp.StatusCode, http.StatusOK)
	}

	user, err := database.GetUserByUsername(ts.db, username)
	if err != nil {
		t.Fatalf("Failed to load user %s after login: %v", username, err)
	}
	return client, user
}

func TestRegisterAndLogin(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Teardown()

	client := newClient(t)

	t.Run("register", func(t *testing.T) {
		resp := doJSON(t, client, http.MethodPost, ts.server.URL+"/register", map[string]string{
			"username": "alice", "email": "alice@example.com", "password": "secret",
		})
		var user models.User
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("register status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}
		decodeBody(t, resp, &user)
		if user.Username != "alice" {
			t.Errorf("register returned username %q, want alice", user.Username)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		resp := doJSON(t, client, http.MethodPost, ts.server.URL+"/register", map[string]string{
			"username": "alice", "email": "alice2@example.com", "password": "secret",
		})
		resp.Body.Close()
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("duplicate register status = %d, want %d", resp.StatusCode, http.StatusConflict)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := doJSON(t, client, http.MethodPost, ts.server.URL+"/login", map[string]string{
			"username": "alice", "password": "wrong",
		})
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("bad login status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
		}
	})

	t.Run("login and whoami", func(t *testing.T) {
		resp := doJSON(t, client, http.MethodPost, ts.server.URL+"/login", map[string]string{
			"username": "alice", "password": "secret",
		})
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("login status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		resp = doJSON(t, client, http.MethodGet, ts.server.URL+"/whoami", nil)
		var user models.User
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("whoami status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		decodeBody(t, resp, &user)
		if user.Username != "alice" {
			t.Errorf("whoami username = %q, want alice", user.Username)
		}
	})

	t.Run("logout invalidates the session", func(t *testing.T) {
		resp := doJSON(t, client, http.MethodPost, ts.server.URL+"/logout", nil)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("logout status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		resp = doJSON(t, client, http.MethodGet, ts.server.URL+"/whoami", nil)
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("whoami after logout status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
		}
	})

	t.Run("whoami anonymous", func(t *testing.T) {
		resp := doJSON(t, newClient(t), http.MethodGet, ts.server.URL+"/whoami", nil)
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("anonymous whoami status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
		}
	})
}

func TestProfileEnsureOnRead(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Teardown()

	client, user := ts.registerAndLogin(t, "profiled")

	// First read creates the profile.
	resp := doJSON(t, client, http.MethodGet, ts.server.URL+"/profile", nil)
	var profile models.UserProfile
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get profile status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	decodeBody(t, resp, &profile)
	if profile.UserID != user.ID {
		t.Errorf("profile user_id = %d, want %d", profile.UserID, user.ID)
	}
	if profile.FullName != "" {
		t.Errorf("fresh profile full_name = %q, want empty", profile.FullName)
	}

	resp = doJSON(t, client, http.MethodPut, ts.server.URL+"/profile", map[string]string{
		"full_name": "Profiled Person", "bio": "hello", "location": "Berlin",
	})
	var updated models.UserProfile
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("put profile status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	decodeBody(t, resp, &updated)
	if updated.FullName != "Profiled Person" || updated.Location != "Berlin" {
		t.Errorf("updated profile got = %+v", updated)
	}
	if updated.ID != profile.ID {
		t.Errorf("update created a new profile row: id %d -> %d", profile.ID, updated.ID)
	}
}

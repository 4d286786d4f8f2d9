package integration

import (
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Vidtube/internal/core/users"
)

// setupTestDB connects to the test database and applies migrations.
// The suite only runs where a Postgres instance is available: tests skip
// when TEST_DATABASE_URL is unset or in short mode.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("Failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "../../internal/db/migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// createTestUser inserts a user row directly in the DB for fixture speed.
// Usernames must be unique and lowercase; callers pass unique names.
func createTestUser(t *testing.T, db *sql.DB, username string) *users.User {
	t.Helper()

	user := &users.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     username + "@test.local",
		FullName:  "Test " + username,
		CreatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO users (id, username, email, full_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := db.Exec(query, user.ID, user.Username, user.Email, user.FullName, user.CreatedAt); err != nil {
		t.Fatalf("Failed to create test user %s: %v", username, err)
	}

	return user
}

// createTestVideo inserts a video row owned by ownerID
func createTestVideo(t *testing.T, db *sql.DB, ownerID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	query := `
		INSERT INTO videos (id, owner_id, title, description, video_file, thumbnail, duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if _, err := db.Exec(query, id, ownerID, title, "integration fixture", "fixture.mp4", "fixture.png", 42.5, time.Now().UTC()); err != nil {
		t.Fatalf("Failed to create test video: %v", err)
	}

	return id
}

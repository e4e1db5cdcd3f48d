package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/fraudlens/fraudlens/internal/repository/postgres"
	"github.com/fraudlens/fraudlens/migrations"
)

// NewTestDB creates an in-memory SQLite database with the full schema
// applied. Foreign keys are enabled so cascade deletes behave as they do in
// production.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := postgres.RunMigrations(db, migrations.GetFS()); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

package repository

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/joinus/backend/internal/db"
)

// newTestDB opens a file-backed SQLite database in a per-test temp dir and
// runs the embedded migrations against it. Tests in this package do not run
// in parallel because goose keeps global dialect state.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	connection := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Init("sqlite", connection)
	if err != nil {
		t.Fatalf("db.Init: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("db.RunMigrations: %v", err)
	}

	return database
}

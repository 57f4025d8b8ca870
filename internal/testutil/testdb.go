package testutil

import (
	"database/sql"
	"testing"

	"github.com/ebarlowe/gradplan/internal/db"
)

// NewTestDB opens a fully migrated in-memory plan database and ties its
// lifetime to the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps a test database in the transactional unit of work used by
// services and the seeder.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

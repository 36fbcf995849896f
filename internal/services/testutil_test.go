package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"takatrack/internal/db"
)

// setupTestDB opens a fresh in-memory database with the full schema. Shared
// cache keeps every pooled connection on the same in-memory store.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.ConnectSQLite("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err, "open test database")
	require.NoError(t, database.Migrate(), "migrate test database")
	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}

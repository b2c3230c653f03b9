package test_utils

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Minpi-0/traveler-app/internal/config"
	"github.com/Minpi-0/traveler-app/internal/database"
	"github.com/stretchr/testify/require"
)

// SetupTestDB opens a throwaway SQLite database in t.TempDir() and runs the
// embedded migrations against it. The connection is closed automatically
// when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := config.Database{Path: filepath.Join(t.TempDir(), "traveler_test.db")}

	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, database.Migrate(cfg))

	return db
}

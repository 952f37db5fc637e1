package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// openTestDB opens a fresh migrated database in a temp dir. A single
// connection keeps sqlite from returning busy errors under the concurrent
// tests; the UNIQUE constraint still does the arbitration.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not re-run applied migrations
	db, err = Open(Config{Path: path})
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	require.Equal(t, len(migrations), count)
}

package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn := filepath.Join(t.TempDir(), "data", "test.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	database, err := Init(DriverSQLite, conn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(database) })

	return database
}

func TestMigrations(t *testing.T) {
	database := openTestDB(t)

	err := RunMigrations(database.DB, DriverSQLite)
	require.NoError(t, err)

	version, err := Version(database.DB, DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)

	// Running again is a no-op
	require.NoError(t, RunMigrations(database.DB, DriverSQLite))

	require.NoError(t, MigrateDown(database.DB, DriverSQLite))
	version, err = Version(database.DB, DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestWithTx(t *testing.T) {
	database := openTestDB(t)
	_, err := database.Exec(`CREATE TABLE counters (name TEXT PRIMARY KEY, n INTEGER NOT NULL)`)
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		err := WithTx(ctx, database, func(tx *sqlx.Tx) error {
			_, err := tx.Exec(`INSERT INTO counters (name, n) VALUES ($1, $2)`, "kept", 1)
			return err
		})
		require.NoError(t, err)

		var n int
		require.NoError(t, database.Get(&n, `SELECT COUNT(*) FROM counters WHERE name = $1`, "kept"))
		assert.Equal(t, 1, n)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := WithTx(ctx, database, func(tx *sqlx.Tx) error {
			_, err := tx.Exec(`INSERT INTO counters (name, n) VALUES ($1, $2)`, "dropped", 1)
			require.NoError(t, err)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var n int
		require.NoError(t, database.Get(&n, `SELECT COUNT(*) FROM counters WHERE name = $1`, "dropped"))
		assert.Equal(t, 0, n)
	})
}

func TestSQLitePath(t *testing.T) {
	assert.Equal(t, "./data/goals.db", sqlitePath("./data/goals.db?_pragma=foreign_keys(1)"))
	assert.Equal(t, "/tmp/x.db", sqlitePath("file:/tmp/x.db"))
}

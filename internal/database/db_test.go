package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmbarbier/brevetcoach/internal/config"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(config.DatabaseConfig{
		Driver: DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "postgres"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestMigrate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db, DriverSQLite))

	for _, table := range []string{"subjects", "lessons", "exercises", "attempts", "study_sessions", "review_states"} {
		var count int
		err := db.GetContext(ctx, &count,
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "missing table %s", table)
	}

	// Re-applying the full set is a no-op.
	require.NoError(t, Migrate(ctx, db, DriverSQLite))
}

func TestMigrate_DefaultsToSQLite(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(context.Background(), db, ""))
}

func TestReset(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, DriverSQLite))

	_, err := db.ExecContext(ctx, "INSERT INTO subjects (name, color) VALUES ('Math', '#ff0000')")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		"INSERT INTO lessons (subject_id, title, summary, importance_points, common_mistakes) VALUES (1, 'Fractions', '', '', '')")
	require.NoError(t, err)

	require.NoError(t, Reset(ctx, db, DriverSQLite))

	var count int
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM subjects"))
	assert.Zero(t, count)
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM lessons"))
	assert.Zero(t, count)
}

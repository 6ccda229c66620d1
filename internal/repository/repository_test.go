package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/config"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/storage"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := storage.NewSQLite(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.RunMigrations(context.Background(), db))
	return db
}

func createTestUser(t *testing.T, db *sql.DB, username string) domain.User {
	t.Helper()

	user, err := NewUserRepository(db).Create(context.Background(), username, "hashed-password")
	require.NoError(t, err)
	return user
}

func countRows(t *testing.T, db *sql.DB, table, userID string) int {
	t.Helper()

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE user_id = ?`, userID).Scan(&count)
	require.NoError(t, err)
	return count
}

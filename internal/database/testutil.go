package database

import (
	"database/sql"
	"testing"

	"github.com/diegoclair/birthday-bot/migrator"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	sqlDB, err := sql.Open(driverSQLite, ":memory:")
	require.NoError(t, err, "Failed to create test database")

	// every pooled connection would otherwise get its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)

	err = migrator.Migrate(sqlDB, driverSQLite)
	require.NoError(t, err, "Failed to run migrations on test database")

	db := &DB{conn: sqlDB, driver: driverSQLite}
	t.Cleanup(func() { db.Close() })

	return db
}

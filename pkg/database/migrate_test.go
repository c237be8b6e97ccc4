package database

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/inquiry-desk/pkg/config"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationFiles, "migrations/*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))

	body, err := fs.ReadFile(migrationFiles, "migrations/000001_create_inquiries.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "credit_type")
}

func TestNewSQLiteInMemory(t *testing.T) {
	db, err := NewSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	var one int
	require.NoError(t, db.Get(&one, "SELECT 1"))
	assert.Equal(t, 1, one)
}

func TestDSNDefaultsSSLMode(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5432, User: "desk", Password: "pw", Name: "inquiry_desk"})

	assert.Equal(t, "host=db port=5432 user=desk password=pw dbname=inquiry_desk sslmode=disable connect_timeout=5", dsn)
}

func newMockPostgres(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return sqlx.NewDb(mockDB, "postgres"), mock
}

func expectDriverStartup(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT CURRENT_DATABASE\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"current_database"}).AddRow("inquiry_desk"))
	mock.ExpectQuery(`SELECT CURRENT_SCHEMA\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"current_schema"}).AddRow("public"))
	mock.ExpectExec(`SELECT pg_advisory_lock\(\$1\)`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FROM information_schema.tables`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`SELECT pg_advisory_unlock\(\$1\)`).WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestMigrationVersionReleasesConnection(t *testing.T) {
	db, mock := newMockPostgres(t)
	expectDriverStartup(mock)
	mock.ExpectQuery(`SELECT version, dirty FROM "public"\."schema_migrations" LIMIT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"version", "dirty"}).AddRow(1, false))

	version, dirty, err := MigrationVersion(context.Background(), db)

	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
	assert.Zero(t, db.Stats().InUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateReleasesConnectionOnDriverFailure(t *testing.T) {
	db, mock := newMockPostgres(t)
	mock.ExpectQuery(`SELECT CURRENT_DATABASE\(\)`).WillReturnError(errors.New("connection reset"))

	err := Migrate(context.Background(), db, Up)

	require.Error(t, err)
	assert.ErrorContains(t, err, "init migration driver")
	assert.Zero(t, db.Stats().InUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateRejectsUnknownDirection(t *testing.T) {
	db, mock := newMockPostgres(t)

	err := Migrate(context.Background(), db, Direction("sideways"))

	assert.ErrorContains(t, err, "unknown migration direction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

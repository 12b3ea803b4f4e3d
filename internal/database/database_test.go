package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   uint `gorm:"primaryKey"`
	Body string
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name   string
		dbPath string
	}{
		{name: "in-memory database", dbPath: ":memory:"},
		{name: "shared in-memory database", dbPath: "file::memory:?cache=shared"},
		{name: "file database in a new directory", dbPath: filepath.Join(t.TempDir(), "nested", "test.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := Initialize(tt.dbPath, false)
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })

			assert.NotNil(t, db.DB)
			assert.NoError(t, db.HealthCheck())
		})
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(Options{Driver: "mysql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestOpen_PostgresUnreachable(t *testing.T) {
	_, err := Open(Options{
		Driver: DriverPostgres,
		DSN:    "host=127.0.0.1 port=1 user=none dbname=none sslmode=disable connect_timeout=1",
	})
	assert.Error(t, err)
}

func TestAutoMigrateAndTables(t *testing.T) {
	db, err := Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tables, err := db.Tables()
	require.NoError(t, err)
	assert.NotContains(t, tables, "notes")

	require.NoError(t, db.AutoMigrate(&note{}))

	tables, err = db.Tables()
	require.NoError(t, err)
	assert.Contains(t, tables, "notes")

	require.NoError(t, db.Create(&note{Body: "kept"}).Error)
	var count int64
	require.NoError(t, db.Model(&note{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestHealthCheck_Closed(t *testing.T) {
	var nilDB *DB
	assert.Error(t, nilDB.HealthCheck())

	db, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck())
}

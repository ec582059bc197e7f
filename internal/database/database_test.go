package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financogram/internal/config"
	"financogram/internal/logger"
)

func TestConfig_DSN(t *testing.T) {
	cfg := NewConfig(&config.Config{
		DBDriver: DriverPostgres, DBHost: "db", DBPort: "5432",
		DBUser: "fin", DBPassword: "p@ss word", DBName: "financogram", DBSSLMode: "disable",
	})

	assert.Equal(t, "host=db port=5432 user=fin password=p@ss word dbname=financogram sslmode=disable", cfg.DSN())
	assert.Equal(t, "postgres://fin:p%40ss%20word@db:5432/financogram?sslmode=disable", cfg.MigrateURL())
}

func TestNewManager_SQLite(t *testing.T) {
	logger.Init("test")
	path := filepath.Join(t.TempDir(), "financogram.db")

	m, err := NewManager(&Config{Driver: DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.RunMigrations())
	assert.True(t, m.DB().Migrator().HasTable("investments"))
}

func TestNewManager_UnknownDriver(t *testing.T) {
	_, err := NewManager(&Config{Driver: "oracle"})
	assert.Error(t, err)
}

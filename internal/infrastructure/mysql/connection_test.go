package mysql

import (
	"testing"

	drv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"senthur/internal/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db.local",
		Port:     3307,
		User:     "senthur",
		Password: "p@ss",
		Name:     "billing",
	})

	parsed, err := drv.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db.local:3307", parsed.Addr)
	assert.Equal(t, "senthur", parsed.User)
	assert.Equal(t, "p@ss", parsed.Passwd)
	assert.Equal(t, "billing", parsed.DBName)
	assert.True(t, parsed.ParseTime)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	assert.Len(t, entries, 8)
}

package database

import (
	"testing"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "token_bridge",
			TimeoutSeconds: 1,
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("SQLite Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		assert.Equal(t, "sqlite", db.Dialector.Name())
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "postgres"})
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestMySQLDSN(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"Plain", "secret"},
		{"Reserved", "p@ss:w/rd?x=1&y"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Host: "db.internal", Port: 3307, User: "bridge", Password: tt.password, Name: "token_bridge"}

			parsed, err := gomysql.ParseDSN(mysqlDSN(cfg, 5))
			require.NoError(t, err)
			assert.Equal(t, "bridge", parsed.User)
			assert.Equal(t, tt.password, parsed.Passwd)
			assert.Equal(t, "tcp", parsed.Net)
			assert.Equal(t, "db.internal:3307", parsed.Addr)
			assert.Equal(t, "token_bridge", parsed.DBName)
			assert.True(t, parsed.ParseTime)
			assert.Equal(t, 5*time.Second, parsed.Timeout)
			assert.Equal(t, 5*time.Second, parsed.ReadTimeout)
			assert.Equal(t, "utf8mb4", parsed.Params["charset"])
		})
	}
}

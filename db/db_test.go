package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	t.Run(`ssl mode by default`, func(t *testing.T) {
		require.Equal(t,
			"host=127.0.0.1 port=5432 user=postgres dbname=recruitment sslmode=disable password=secret",
			dsn("127.0.0.1", "5432", "recruitment", "postgres", "secret", ""))
	})

	t.Run(`ssl mode from config`, func(t *testing.T) {
		require.Contains(t, dsn("db", "5432", "recruitment", "app", "pass", "require"), "sslmode=require")
	})
}

func TestPingWithoutConnection(t *testing.T) {
	DB = nil
	require.NotNil(t, PingDB())
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyEnv(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_DSN", "LOCAL_DB_PATH", "JWT_SECRET", "SHARED_PASSPHRASE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "", cfg.DBDSN)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_DSN", "host=localhost")
	t.Setenv("SHARED_PASSPHRASE", "rahasia")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=localhost", cfg.DBDSN)
	assert.Equal(t, "rahasia", cfg.SharedPassphrase)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestGetEnvAsIntFallback(t *testing.T) {
	t.Setenv("SIRUP_TEST_INT", "bukan-angka")
	assert.Equal(t, 7, GetEnvAsInt("SIRUP_TEST_INT", 7))
}

func TestConnectDBWithoutDSN(t *testing.T) {
	db, err := ConnectDB("mysql", "")
	require.ErrorIs(t, err, ErrNoDSN)
	assert.Nil(t, db)
}

func TestConnectDBUnknownDriver(t *testing.T) {
	_, err := ConnectDB("oracle", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

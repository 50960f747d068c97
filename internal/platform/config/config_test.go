package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MemoryDriverDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("IS_PRODUCTION", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, 5, cfg.TxMaxAttempts)
	assert.Equal(t, 25*time.Millisecond, cfg.TxInitialBackoff)
	assert.Equal(t, 500*time.Millisecond, cfg.TxMaxBackoff)
	assert.Equal(t, "USD", cfg.DefaultCurrency)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigin)
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PGSQL_URL")
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestLoadConfig_InvalidBackoff(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("IS_PRODUCTION", "false")
	t.Setenv("TX_MAX_BACKOFF", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TX_MAX_BACKOFF")
}

func TestLoadConfig_AttemptsClampedToOne(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("IS_PRODUCTION", "false")
	t.Setenv("TX_MAX_ATTEMPTS", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.TxMaxAttempts)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_DSN", "LOG_FILE", "SEED", "BODY_LIMIT", "RATE_LIMIT"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://shop@localhost/shop?sslmode=disable")
	t.Setenv("SEED", "false")
	t.Setenv("RATE_LIMIT", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.False(t, cfg.Seed)
	assert.Equal(t, 0, cfg.RateLimit)
	assert.Equal(t, 1<<20, cfg.BodyLimit)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	for k, v := range map[string]string{"RATE_LIMIT": "lots", "BODY_LIMIT": "1MB", "SEED": "maybe"} {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

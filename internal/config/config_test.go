package config_test

import (
	"testing"
	"time"

	"github.com/0xIG/article-crud/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("requires JWT secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 6*time.Hour, cfg.JWTExpiry)
		assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PORT", "9999")
		t.Setenv("JWT_EXPIRATION_HOURS", "12")
		t.Setenv("CACHE_TTL_SECONDS", "30")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "9999", cfg.Port)
		assert.Equal(t, 12*time.Hour, cfg.JWTExpiry)
		assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	})
}

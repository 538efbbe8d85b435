package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("requires JWT_SECRET", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, 24, cfg.JWTExpirationHours)
		assert.Equal(t, int64(10<<20), cfg.MaxBodyBytes)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PORT", "9090")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("JWT_EXPIRATION_HOURS", "2")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, 2, cfg.JWTExpirationHours)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("ignores malformed integer overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "soon")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 24, cfg.JWTExpirationHours)
	})
}

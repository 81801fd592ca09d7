package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, time.Hour, cfg.AccessTokenExpiry)
	assert.Equal(t, 720*time.Hour, cfg.RefreshTokenExpiry)
	assert.Equal(t, 10, cfg.TrendingLimit)
	assert.Equal(t, 15*time.Minute, cfg.PreferencesCacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.CompareSetTTL)
	assert.Empty(t, cfg.CatalogPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TRENDING_LIMIT", "5")
	t.Setenv("PREFERENCES_CACHE_TTL", "30m")
	t.Setenv("CATALOG_PATH", "/data/destinations.json")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5, cfg.TrendingLimit)
	assert.Equal(t, 30*time.Minute, cfg.PreferencesCacheTTL)
	assert.Equal(t, "/data/destinations.json", cfg.CatalogPath)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("TRENDING_LIMIT", "not-a-number")
	t.Setenv("COMPARE_SET_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 10, cfg.TrendingLimit)
	assert.Equal(t, 24*time.Hour, cfg.CompareSetTTL)
}

func TestValidateDefaults(t *testing.T) {
	cfg := Load()
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsDefaultSecretInProduction(t *testing.T) {
	cfg := Load()
	cfg.Environment = "production"

	require.Error(t, cfg.Validate())

	cfg.JWTSecret = "an-actual-secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing database url", func(c *Config) { c.DatabaseURL = "" }},
		{"bcrypt cost too low", func(c *Config) { c.BCryptCost = 2 }},
		{"zero access token expiry", func(c *Config) { c.AccessTokenExpiry = 0 }},
		{"zero trending limit", func(c *Config) { c.TrendingLimit = 0 }},
		{"zero cache ttl", func(c *Config) { c.PreferencesCacheTTL = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Load()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := Load()
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Environment = "production"
	assert.True(t, cfg.IsProduction())
}

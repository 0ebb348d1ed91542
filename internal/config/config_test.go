// internal/config/config_test.go

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "BASE_URL", "ENABLE_MATCH_CACHE", "MATCH_CACHE_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 18, cfg.MinAge)
	assert.Equal(t, 65, cfg.MaxAge)
	assert.Equal(t, 50.0, cfg.DefaultMaxDistanceKm)
	assert.Equal(t, 20, cfg.DefaultMaxResults)
	assert.Equal(t, 500, cfg.CandidatePoolLimit)
	assert.True(t, cfg.EnableMatchCache)
	assert.Equal(t, 10*time.Minute, cfg.MatchCacheTTL)

	require.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MATCHING_MAX_AGE", "65")
	t.Setenv("MATCHING_DEFAULT_MAX_DISTANCE_KM", "25.5")
	t.Setenv("ENABLE_MATCH_CACHE", "false")
	t.Setenv("MATCH_CACHE_TTL", "30s")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://localhost:9090", cfg.BaseURL)
	assert.Equal(t, 65, cfg.MaxAge)
	assert.Equal(t, 25.5, cfg.DefaultMaxDistanceKm)
	assert.False(t, cfg.EnableMatchCache)
	assert.Equal(t, 30*time.Second, cfg.MatchCacheTTL)
}

func TestLoadBadValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("MATCHING_MIN_AGE", "not-a-number")
	t.Setenv("MATCH_CACHE_TTL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 18, cfg.MinAge)
	assert.Equal(t, 10*time.Minute, cfg.MatchCacheTTL)
}

func TestValidate(t *testing.T) {
	base := func() *Config { return Load() }

	t.Run("default secret rejected in production", func(t *testing.T) {
		cfg := base()
		cfg.Environment = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing database URL", func(t *testing.T) {
		cfg := base()
		cfg.DatabaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("minimum age below 18", func(t *testing.T) {
		cfg := base()
		cfg.MinAge = 16
		assert.Error(t, cfg.Validate())
	})

	t.Run("inverted age range", func(t *testing.T) {
		cfg := base()
		cfg.MinAge, cfg.MaxAge = 40, 30
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive distance", func(t *testing.T) {
		cfg := base()
		cfg.DefaultMaxDistanceKm = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("pool smaller than result cap", func(t *testing.T) {
		cfg := base()
		cfg.CandidatePoolLimit = 10
		assert.Error(t, cfg.Validate())
	})
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := &Config{Environment: "production"}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	unsetenv(t, "CACHE_BACKEND", "NOTIFY_BACKEND", "PORT", "VIEW_TTL", "DEFAULT_PIC_NAME", "WORKSPACE_TIMEZONE")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "Jason Duong", cfg.Workspace.DefaultPICName)
	assert.Equal(t, "JasonD", cfg.Workspace.CurrentUserName)
	assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Cache.ViewTTL)
	assert.False(t, cfg.UsesRedis())
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_BACKEND", "redis")
	unsetenv(t, "NOTIFY_BACKEND")
	t.Setenv("VIEW_TTL", "5m")
	t.Setenv("DEFAULT_PIC_NAME", "Ada Lovelace")
	t.Setenv("WORKSPACE_TIMEZONE", "UTC")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Cache.ViewTTL)
	assert.Equal(t, "Ada Lovelace", cfg.Workspace.DefaultPICName)
	assert.True(t, cfg.UsesRedis())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestValidateRejectsUnknownBackends(t *testing.T) {
	unsetenv(t, "NOTIFY_BACKEND")
	t.Setenv("CACHE_BACKEND", "memcached")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_BACKEND")
}

func TestValidateRejectsBadTimezone(t *testing.T) {
	unsetenv(t, "CACHE_BACKEND", "NOTIFY_BACKEND", "PORT", "VIEW_TTL", "DEFAULT_PIC_NAME", "WORKSPACE_TIMEZONE")
	t.Setenv("WORKSPACE_TIMEZONE", "Mars/Olympus_Mons")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORKSPACE_TIMEZONE")
}

// unsetenv removes keys for the duration of the test
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

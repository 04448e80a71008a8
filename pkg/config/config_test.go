package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("test-version")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.BindAddr)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "test-version", cfg.Version)
	assert.Equal(t, "badger", cfg.Store.Backend)
	assert.Equal(t, "./data/admin.db", cfg.Store.Path)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.False(t, cfg.AI.IsConfigured(), "no model configured by default")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("STORE_PATH", "/tmp/admin.db")
	t.Setenv("AI_PROVIDER", "anthropic")
	t.Setenv("AI_MODEL", "claude-sonnet-4-20250514")
	t.Setenv("AI_API_KEY", "test-key")

	cfg, err := Load("test-version")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "/tmp/admin.db", cfg.Store.Path)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
	assert.True(t, cfg.AI.IsConfigured())
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")

	_, err := Load("test-version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid store backend")
}

func TestLoad_InvalidProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "bard")

	_, err := Load("test-version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ai provider")
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"token-bridge/core/palette"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.ApiKey)
	assert.Equal(t, 8, cfg.Server.BodyLimitMB)
	assert.Equal(t, "design-tokens", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.CreateBucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.Equal(t, "HEAD", cfg.Repo.Ref)
	assert.Equal(t, "tokens/tokens.json", cfg.Repo.TokensPath)
	assert.Equal(t, "complementary", cfg.Engine.DefaultHarmony)
	assert.Equal(t, "tokens/", cfg.Engine.DocumentPrefix)
	assert.False(t, cfg.Engine.StrictDuplicates)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("CACHE_REDIS_URL", "redis://cache:6379/1")
	t.Setenv("ENGINE_DEFAULT_HARMONY", "triadic")
	t.Setenv("ENGINE_STRICT_DUPLICATES", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, "redis://cache:6379/1", cfg.Cache.RedisURL)
	assert.Equal(t, palette.HarmonyTriadic, cfg.Engine.Harmony())
	assert.True(t, cfg.Engine.StrictDuplicates)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nREPO_PATH=/srv/design\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("REPO_PATH")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/srv/design", cfg.Repo.Path)
}

func TestLoadConfig_InvalidHarmony(t *testing.T) {
	t.Setenv("ENGINE_DEFAULT_HARMONY", "tetradic")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, palette.ErrUnknownHarmony))
}

func TestEngineConfig_Harmony(t *testing.T) {
	assert.Equal(t, palette.HarmonyAnalogous, EngineConfig{DefaultHarmony: "Analogous"}.Harmony())
	assert.Equal(t, palette.HarmonyComplementary, EngineConfig{}.Harmony())
	assert.NoError(t, EngineConfig{}.Validate())
}

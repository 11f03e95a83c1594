package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Adapter.StashSize)
	assert.Equal(t, 5, cfg.Adapter.PoolCapacity)
	assert.False(t, cfg.Adapter.Debug)
	assert.False(t, cfg.Adapter.SharedPool)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "scenarios", cfg.Storage.Bucket)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("ADAPTER_STASH_SIZE", "0")
	t.Setenv("ADAPTER_DEBUG", "true")
	t.Setenv("ADAPTER_START_OFFSET", "1")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Adapter.StashSize)
	assert.True(t, cfg.Adapter.Debug)
	assert.Equal(t, 1, cfg.Adapter.StartOffset)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ADAPTER_POOL_CAPACITY=9\nSERVER_PORT=9191\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("ADAPTER_POOL_CAPACITY")
		os.Unsetenv("SERVER_PORT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Adapter.PoolCapacity)
	assert.Equal(t, "9191", cfg.Server.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("ADAPTER_END_OFFSET", "-1")

	cfg, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestBindValues(t *testing.T) {
	v := viper.New()
	bindValues(v, &Config{}, "")

	assert.True(t, v.IsSet("adapter.stash_size"))
	assert.Equal(t, "3", v.GetString("adapter.stash_size"))
	assert.Equal(t, "", v.GetString("server.api_key"))
}

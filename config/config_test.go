package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/typefall/constants"
)

// clearEnv unsets every key Load reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"WORDS", "DEBUG", "MUTE", "VOLUME", "FPS", "SEED", "LOG_LEVEL", "LOG_DIR"} {
		key := EnvPrefix + k
		if old, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { os.Setenv(key, old) })
		}
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, constants.DefaultFPS, cfg.FPS)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.Empty(t, cfg.WordsPath)
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	envFile := writeEnvFile(t, "TYPEFALL_WORDS=file.txt\nTYPEFALL_FPS=30\nTYPEFALL_MUTE=true\nTYPEFALL_LOG_LEVEL=warn\n")

	cfg, err := Load(nil, envFile)
	require.NoError(t, err)
	assert.Equal(t, "file.txt", cfg.WordsPath)
	assert.Equal(t, 30, cfg.FPS)
	assert.True(t, cfg.Mute)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())

	t.Setenv("TYPEFALL_FPS", "90")
	t.Setenv("TYPEFALL_WORDS", "env.txt")
	cfg, err = Load(nil, envFile)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.FPS, "environment beats env file")
	assert.Equal(t, "env.txt", cfg.WordsPath)

	cfg, err = Load([]string{"--fps", "120", "--words", "flag.txt", "--debug", "--seed", "7"}, envFile)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.FPS, "flags beat environment")
	assert.Equal(t, "flag.txt", cfg.WordsPath)
	assert.True(t, cfg.Debug)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.True(t, cfg.Mute, "unset flags keep lower layers")
}

func TestLoadClampsFPS(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{"--fps", "1"})
	require.NoError(t, err)
	assert.Equal(t, constants.MinFPS, cfg.FPS)

	cfg, err = Load([]string{"--fps", "10000"})
	require.NoError(t, err)
	assert.Equal(t, constants.MaxFPS, cfg.FPS)
	assert.Equal(t, time.Second/time.Duration(constants.MaxFPS), cfg.TickInterval())
}

func TestLoadVolume(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Volume)

	t.Setenv("TYPEFALL_VOLUME", "0.25")
	cfg, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Volume)

	cfg, err = Load([]string{"--volume", "4"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Volume, "clamped to full volume")

	cfg, err = Load([]string{"--volume", "-1"})
	require.NoError(t, err)
	assert.Zero(t, cfg.Volume)

	t.Setenv("TYPEFALL_VOLUME", "loud")
	_, err = Load(nil)
	assert.ErrorContains(t, err, "TYPEFALL_VOLUME")
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	t.Run("bad env int", func(t *testing.T) {
		t.Setenv("TYPEFALL_FPS", "fast")
		_, err := Load(nil)
		assert.ErrorContains(t, err, "TYPEFALL_FPS")
	})

	t.Run("bad env bool", func(t *testing.T) {
		t.Setenv("TYPEFALL_DEBUG", "maybe")
		_, err := Load(nil)
		assert.ErrorContains(t, err, "TYPEFALL_DEBUG")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := Load([]string{"--log-level", "chatty"})
		assert.ErrorContains(t, err, "chatty")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := Load([]string{"--nope"})
		assert.Error(t, err)
	})

	t.Run("help", func(t *testing.T) {
		_, err := Load([]string{"-h"})
		assert.ErrorIs(t, err, flag.ErrHelp)
	})
}

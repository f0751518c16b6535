package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Ranker.K())
		assert.Equal(t, "_", cfg.Ranker.ExcludeSubstring())
		assert.False(t, cfg.Ranker.Backfill)
		assert.Equal(t, "text", cfg.Reporter.Type)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
	})

	t.Run("values from yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "topwords.yaml")
		data := "ranker:\n  top_k: 3\n  exclude: \"\"\n  backfill: true\nreporter:\n  type: tui\nlog:\n  level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Ranker.K())
		assert.Equal(t, "", cfg.Ranker.ExcludeSubstring())
		assert.True(t, cfg.Ranker.Backfill)
		assert.Equal(t, "tui", cfg.Reporter.Type)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
	})

	t.Run("explicit zero top k is kept", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "topwords.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ranker:\n  top_k: 0\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, cfg.Ranker.TopK)
		assert.Equal(t, 0, cfg.Ranker.K())
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ranker: [1, 2"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		t.Setenv(envTopK, "0")
		t.Setenv(envLogLevel, "debug")
		cfg := defaultConfig()

		require.NoError(t, ApplyEnv(cfg))
		assert.Equal(t, 0, cfg.Ranker.K())
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("invalid top k", func(t *testing.T) {
		t.Setenv(envTopK, "many")
		cfg := defaultConfig()

		err := ApplyEnv(cfg)
		require.Error(t, err)
		assert.Equal(t, 10, cfg.Ranker.K())
	})
}

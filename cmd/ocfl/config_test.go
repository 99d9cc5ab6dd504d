package main_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ocfl/ocfl"
	main "github.com/ocfl/ocfl/cmd/ocfl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// env returns a getenv func backed by vars.
func env(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("uses defaults without a config file", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()

		cfg, err := main.LoadConfig("", env(nil), home)

		require.NoError(t, err)
		assert.Equal(t, main.DefaultConfig(home), cfg)
		assert.Equal(t, filepath.Join(home, ".ocfl", "cache"), cfg.CacheDir)
		assert.Equal(t, main.BackendFile, cfg.CacheBackend)
	})

	t.Run("reads the default config file", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()
		writeConfig(t, main.DefaultConfigPath(home), `
directory = "/data/DIRECTORY.md"
cache_backend = "sqlite"
cache_ttl = "1h"
`)

		cfg, err := main.LoadConfig("", env(nil), home)

		require.NoError(t, err)
		assert.Equal(t, "/data/DIRECTORY.md", cfg.Directory)
		assert.Equal(t, main.BackendSQLite, cfg.CacheBackend)
		assert.Equal(t, "1h", cfg.CacheTTL)
		// Keys absent from the file keep their defaults.
		assert.Equal(t, filepath.Join(home, ".ocfl", "cache"), cfg.CacheDir)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()
		writeConfig(t, main.DefaultConfigPath(home), `directory = "/data/DIRECTORY.md"`)

		cfg, err := main.LoadConfig("", env(map[string]string{
			"OCFL_DIRECTORY":     "/env/DIRECTORY.md",
			"OCFL_CACHE_BACKEND": "none",
		}), home)

		require.NoError(t, err)
		assert.Equal(t, "/env/DIRECTORY.md", cfg.Directory)
		assert.Equal(t, main.BackendNone, cfg.CacheBackend)
	})

	t.Run("reads the file named by OCFL_CONFIG", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.toml")
		writeConfig(t, path, `log_level = "debug"`)

		cfg, err := main.LoadConfig("", env(map[string]string{"OCFL_CONFIG": path}), t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("fails when an explicit file is missing", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), env(nil), t.TempDir())

		require.Error(t, err)
	})

	t.Run("rejects malformed TOML", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.toml")
		writeConfig(t, path, `directory = `)

		_, err := main.LoadConfig(path, env(nil), t.TempDir())

		assert.Equal(t, ocfl.EINVALID, ocfl.ErrorCode(err))
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := main.DefaultConfig("/home/test")

	tests := []struct {
		name   string
		modify func(*main.Config)
		ok     bool
	}{
		{name: "defaults", modify: func(*main.Config) {}, ok: true},
		{name: "sqlite backend", modify: func(c *main.Config) { c.CacheBackend = "sqlite" }, ok: true},
		{name: "unknown backend", modify: func(c *main.Config) { c.CacheBackend = "redis" }},
		{name: "empty directory", modify: func(c *main.Config) { c.Directory = "" }},
		{name: "bad ttl", modify: func(c *main.Config) { c.CacheTTL = "a day" }},
		{name: "negative ttl", modify: func(c *main.Config) { c.CacheTTL = "-1h" }},
		{name: "bad log level", modify: func(c *main.Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.modify(&cfg)

			err := cfg.Validate()

			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, ocfl.EINVALID, ocfl.ErrorCode(err))
			}
		})
	}
}

func TestConfig_Parse(t *testing.T) {
	t.Parallel()

	cfg := main.Config{CacheTTL: "90m", LogLevel: "DEBUG"}

	ttl, err := cfg.TTL()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, ttl)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

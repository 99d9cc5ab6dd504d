package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ocfl/ocfl"
	"github.com/ocfl/ocfl/cache"
	"github.com/pelletier/go-toml/v2"
)

// Cache backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendNone   = "none"
)

// Config holds settings resolved from defaults, the config file, the
// environment and flags, in increasing order of precedence.
type Config struct {
	Directory    string `toml:"directory"`
	CacheDir     string `toml:"cache_dir"`
	CacheBackend string `toml:"cache_backend"`
	CacheTTL     string `toml:"cache_ttl"`
	LogLevel     string `toml:"log_level"`
}

// DefaultConfig returns the settings used when nothing overrides them.
// home is the user's home directory; an empty home keeps the cache next
// to the working directory.
func DefaultConfig(home string) Config {
	cacheDir := filepath.Join(".ocfl", "cache")
	if home != "" {
		cacheDir = filepath.Join(home, ".ocfl", "cache")
	}
	return Config{
		Directory:    "DIRECTORY.md",
		CacheDir:     cacheDir,
		CacheBackend: BackendFile,
		CacheTTL:     cache.DefaultTTL.String(),
		LogLevel:     "warn",
	}
}

// DefaultConfigPath returns ~/.ocfl/config.toml.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, ".ocfl", "config.toml")
}

// LoadConfig layers the config file and OCFL_* environment variables over
// the defaults. A missing file is only an error when path was given
// explicitly, by argument or by OCFL_CONFIG.
func LoadConfig(path string, getenv func(string) string, home string) (Config, error) {
	cfg := DefaultConfig(home)

	explicit := true
	if path == "" {
		path = getenv("OCFL_CONFIG")
	}
	if path == "" {
		if home == "" {
			explicit = false
		} else {
			path, explicit = DefaultConfigPath(home), false
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist) && !explicit:
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, ocfl.Errorf(ocfl.EINVALID, "invalid config file %s: %s", path, err)
			}
		}
	}

	for key, dst := range map[string]*string{
		"OCFL_DIRECTORY":     &cfg.Directory,
		"OCFL_CACHE_DIR":     &cfg.CacheDir,
		"OCFL_CACHE_BACKEND": &cfg.CacheBackend,
		"OCFL_CACHE_TTL":     &cfg.CacheTTL,
		"OCFL_LOG_LEVEL":     &cfg.LogLevel,
	} {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	return cfg, nil
}

// Validate returns an error if a setting cannot be used.
func (c *Config) Validate() error {
	switch c.CacheBackend {
	case BackendFile, BackendSQLite, BackendNone:
	default:
		return ocfl.Errorf(ocfl.EINVALID, "unknown cache backend %q (want file, sqlite or none)", c.CacheBackend)
	}
	if c.Directory == "" {
		return ocfl.Errorf(ocfl.EINVALID, "directory document path required")
	}
	if _, err := c.TTL(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// TTL parses the cache freshness window.
func (c *Config) TTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d <= 0 {
		return 0, ocfl.Errorf(ocfl.EINVALID, "invalid cache_ttl %q", c.CacheTTL)
	}
	return d, nil
}

// Level parses the log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return 0, ocfl.Errorf(ocfl.EINVALID, "invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

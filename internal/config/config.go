// Package config loads the notebook's runtime settings from the environment
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/tft-notebook/internal/errors"
)

// AppDirName is the directory created under the user config and cache dirs
const AppDirName = "tft-notebook"

// Storage backends
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Backends lists the supported storage backends
var Backends = []string{BackendFile, BackendRedis, BackendSQLite}

// LogLevels lists the accepted log levels
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds every setting the notebook needs. Values come from TFT_*
// environment variables and may be overridden by command line flags.
type Config struct {
	DataURL      string        `env:"TFT_DATA_URL"`
	AssetBaseURL string        `env:"TFT_ASSET_BASE_URL"`
	HTTPTimeout  time.Duration `env:"TFT_HTTP_TIMEOUT" envDefault:"60s"`
	SetIndex     int           `env:"TFT_SET_INDEX" envDefault:"18"`

	DataDir  string `env:"TFT_DATA_DIR"`
	CacheDir string `env:"TFT_CACHE_DIR"`

	Backend    string `env:"TFT_BACKEND" envDefault:"file"`
	Profile    string `env:"TFT_PROFILE" envDefault:"default"`
	RedisURL   string `env:"TFT_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	SQLitePath string `env:"TFT_SQLITE_PATH"`

	LogLevel string `env:"TFT_LOG_LEVEL" envDefault:"info"`
}

// Load reads the given dotenv files (missing ones are skipped) and then
// parses the environment. Variables already set win over dotenv values.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to load %s", file)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks the settings and fills in directory defaults
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	c.Backend = strings.ToLower(c.Backend)
	c.LogLevel = strings.ToLower(c.LogLevel)

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("backend", c.Backend, Backends, vb)
	errors.ValidateEnum("log_level", c.LogLevel, LogLevels, vb)
	errors.ValidateRequired("profile", c.Profile, vb)
	errors.ValidateNonNegative("set_index", c.SetIndex, vb)
	if c.HTTPTimeout <= 0 {
		vb.InvalidField("http_timeout", "must be positive")
	}
	if c.Backend == BackendRedis {
		errors.ValidateRequired("redis_url", c.RedisURL, vb)
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.DataDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return errors.Wrap(err, "failed to resolve user config dir")
		}
		c.DataDir = filepath.Join(dir, AppDirName)
	}
	if c.CacheDir == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return errors.Wrap(err, "failed to resolve user cache dir")
		}
		c.CacheDir = filepath.Join(dir, AppDirName)
	}
	if c.SQLitePath == "" {
		c.SQLitePath = filepath.Join(c.DataDir, "notebook.db")
	}

	return nil
}

// IconDir is where downloaded icons are cached
func (c *Config) IconDir() string {
	return filepath.Join(c.CacheDir, "icons")
}

// EnsureDirs creates the data and cache directories
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.DataDir, c.CacheDir, c.IconDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Persistencef(err, "failed to create %s", dir)
		}
	}
	return nil
}

// SlogLevel maps the configured level onto slog
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

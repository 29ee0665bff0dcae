package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tft-notebook/internal/config"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(18, cfg.SetIndex)
	s.Equal(config.BackendFile, cfg.Backend)
	s.Equal("default", cfg.Profile)
	s.Equal("info", cfg.LogLevel)
	s.Equal(60*time.Second, cfg.HTTPTimeout)
}

func (s *ConfigTestSuite) TestLoadFromEnvironment() {
	s.T().Setenv("TFT_SET_INDEX", "3")
	s.T().Setenv("TFT_BACKEND", "redis")
	s.T().Setenv("TFT_HTTP_TIMEOUT", "5s")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(3, cfg.SetIndex)
	s.Equal(config.BackendRedis, cfg.Backend)
	s.Equal(5*time.Second, cfg.HTTPTimeout)
}

func (s *ConfigTestSuite) TestLoadDotenv() {
	dir := s.T().TempDir()
	file := filepath.Join(dir, ".env")
	s.Require().NoError(os.WriteFile(file, []byte("TFT_PROFILE=ranked\n"), 0o600))
	s.T().Cleanup(func() { _ = os.Unsetenv("TFT_PROFILE") })

	cfg, err := config.Load(filepath.Join(dir, "missing.env"), file)
	s.Require().NoError(err)
	s.Equal("ranked", cfg.Profile)
}

func (s *ConfigTestSuite) TestLoadBadValue() {
	s.T().Setenv("TFT_SET_INDEX", "eighteen")

	_, err := config.Load()
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		modify  func(*config.Config)
		wantErr bool
	}{
		{name: "valid", modify: func(*config.Config) {}},
		{name: "uppercase backend", modify: func(c *config.Config) { c.Backend = "SQLITE" }},
		{name: "unknown backend", modify: func(c *config.Config) { c.Backend = "mongo" }, wantErr: true},
		{name: "unknown log level", modify: func(c *config.Config) { c.LogLevel = "trace" }, wantErr: true},
		{name: "empty profile", modify: func(c *config.Config) { c.Profile = "" }, wantErr: true},
		{name: "negative set index", modify: func(c *config.Config) { c.SetIndex = -1 }, wantErr: true},
		{name: "zero timeout", modify: func(c *config.Config) { c.HTTPTimeout = 0 }, wantErr: true},
		{name: "redis without url", modify: func(c *config.Config) { c.Backend = "redis"; c.RedisURL = "" }, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			dir := s.T().TempDir()
			cfg := &config.Config{
				HTTPTimeout: time.Second,
				SetIndex:    18,
				DataDir:     dir,
				CacheDir:    dir,
				Backend:     config.BackendFile,
				Profile:     "default",
				LogLevel:    "info",
			}
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.NoError(err)
		})
	}
}

func (s *ConfigTestSuite) TestValidateFillsPaths() {
	dir := s.T().TempDir()
	cfg := &config.Config{
		HTTPTimeout: time.Second,
		DataDir:     filepath.Join(dir, "data"),
		CacheDir:    filepath.Join(dir, "cache"),
		Backend:     config.BackendSQLite,
		Profile:     "default",
		LogLevel:    "DEBUG",
	}

	s.Require().NoError(cfg.Validate())
	s.Equal(filepath.Join(dir, "data", "notebook.db"), cfg.SQLitePath)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())

	s.Require().NoError(cfg.EnsureDirs())
	s.DirExists(cfg.DataDir)
	s.DirExists(cfg.IconDir())
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

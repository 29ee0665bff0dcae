// Package main is the entry point for the TFT item-build notebook
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tft-notebook/internal/config"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
)

var (
	cfg     *config.Config
	envFile string
	flags   = &flagValues{}
)

// flagValues mirror the config fields a flag may override
type flagValues struct {
	dataURL    string
	setIndex   int
	dataDir    string
	cacheDir   string
	backend    string
	profile    string
	redisURL   string
	sqlitePath string
	logLevel   string
}

var rootCmd = &cobra.Command{
	Use:   "notebook",
	Short: "TFT item-build notebook",
	Long: `Plan Teamfight Tactics item builds: assign completed items to champions,
count the components you hold, and rank champions by how well your components
fit their builds.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
	pf.StringVar(&flags.dataURL, "data-url", "", "game-data document URL (TFT_DATA_URL)")
	pf.IntVar(&flags.setIndex, "set", 0, "index into the setData array (TFT_SET_INDEX)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory for saved builds (TFT_DATA_DIR)")
	pf.StringVar(&flags.cacheDir, "cache-dir", "", "directory for cached icons (TFT_CACHE_DIR)")
	pf.StringVar(&flags.backend, "backend", "", "storage backend: file, redis or sqlite (TFT_BACKEND)")
	pf.StringVar(&flags.profile, "profile", "", "named build state to load and save (TFT_PROFILE)")
	pf.StringVar(&flags.redisURL, "redis-url", "", "redis URL for the redis backend (TFT_REDIS_URL)")
	pf.StringVar(&flags.sqlitePath, "sqlite-path", "", "database file for the sqlite backend (TFT_SQLITE_PATH)")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (TFT_LOG_LEVEL)")

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(championsCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(componentsCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(unassignCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(iconsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(migrateCmd)
}

// setup builds the config from dotenv, environment and flags, in rising
// priority, then installs the logger
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(envFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, loaded)

	if err := loaded.Validate(); err != nil {
		return err
	}
	if err := loaded.EnsureDirs(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: loaded.SlogLevel(),
	})))

	cfg = loaded
	return nil
}

func applyFlags(cmd *cobra.Command, c *config.Config) {
	pf := cmd.Flags()
	if pf.Changed("data-url") {
		c.DataURL = flags.dataURL
	}
	if pf.Changed("set") {
		c.SetIndex = flags.setIndex
	}
	if pf.Changed("data-dir") {
		c.DataDir = flags.dataDir
	}
	if pf.Changed("cache-dir") {
		c.CacheDir = flags.cacheDir
	}
	if pf.Changed("backend") {
		c.Backend = flags.backend
	}
	if pf.Changed("profile") {
		c.Profile = flags.profile
	}
	if pf.Changed("redis-url") {
		c.RedisURL = flags.redisURL
	}
	if pf.Changed("sqlite-path") {
		c.SQLitePath = flags.sqlitePath
	}
	if pf.Changed("log-level") {
		c.LogLevel = flags.logLevel
	}
}

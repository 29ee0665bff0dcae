package main

import (
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tft-notebook/internal/config"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
	"github.com/KirkDiggler/tft-notebook/internal/repositories/buildstate"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List earlier saves of the profile (sqlite backend only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.Backend != config.BackendSQLite {
			return errors.FailedPreconditionf("history needs the sqlite backend, not %s", cfg.Backend)
		}

		repo, err := buildstate.NewSQLite(&buildstate.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return err
		}
		defer closeQuietly("sqlite", repo.Close)

		snapshots, err := repo.History(cmd.Context(), cfg.Profile, historyLimit)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Snapshot", "Saved", "Set"})
		for _, snap := range snapshots {
			table.Append([]string{snap.ID, snap.SavedAt.Format(time.DateTime), snap.SetName})
		}
		table.Render()
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of saves to list")
}

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tft-notebook/internal/errors"
	"github.com/KirkDiggler/tft-notebook/internal/repositories/buildstate"
)

var migrateTo string

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List saved profiles and flag unreadable ones",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, closeRepo, err := newRepository(cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		out, err := repo.ListProfiles(cmd.Context())
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Profile", "Saved", "Champions", "Status"})
		for _, p := range out.Profiles {
			status, saved := "ok", ""
			if p.Corrupt {
				status = "corrupt"
			} else if !p.SavedAt.IsZero() {
				saved = p.SavedAt.Local().Format(time.DateTime)
			}
			table.Append([]string{p.Profile, saved, strconv.Itoa(p.Champions), status})
		}
		table.Render()
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy the profile's saved builds to another backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if migrateTo == cfg.Backend {
			return errors.InvalidArgumentf("profile already uses the %s backend", migrateTo)
		}

		target := *cfg
		target.Backend = migrateTo
		if err := target.Validate(); err != nil {
			return err
		}

		src, closeSrc, err := newRepository(cfg)
		if err != nil {
			return err
		}
		defer closeSrc()

		dst, closeDst, err := newRepository(&target)
		if err != nil {
			return err
		}
		defer closeDst()

		loaded, err := src.Load(ctx, buildstate.LoadInput{Profile: cfg.Profile})
		if err != nil {
			return err
		}

		saved, err := dst.Save(ctx, buildstate.SaveInput{Profile: cfg.Profile, Snapshot: loaded.Snapshot})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "copied %d champions of profile %s to %s\n",
			len(loaded.Snapshot.Champions), cfg.Profile, saved.Location)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "target backend: file, redis or sqlite")
	_ = migrateCmd.MarkFlagRequired("to")
}

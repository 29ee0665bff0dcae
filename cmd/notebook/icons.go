package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Download every champion and item icon into the cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		svc, closeRepo, err := openNotebook(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		out, err := svc.WarmIcons(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d icons cached in %s, %d unavailable\n", out.Resolved, cfg.IconDir(), out.Failed)
		return nil
	},
}

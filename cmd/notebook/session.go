package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tft-notebook/internal/handlers/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive notebook session",
	Long: `Start an interactive session. Type help at the prompt for the command list.
Quote names with spaces: select "Miss Fortune".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		svc, closeRepo, err := openNotebook(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		handler, err := session.NewHandler(&session.HandlerConfig{
			Service: svc,
			In:      os.Stdin,
			Out:     cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}
		return handler.Run(ctx)
	},
}

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tft-notebook/internal/handlers/session"
)

var sortOrder string

// runCommands bootstraps a notebook and feeds it session commands in order.
// Any error stops the run.
func runCommands(cmd *cobra.Command, lines ...[]string) error {
	ctx := cmd.Context()

	svc, closeRepo, err := openNotebook(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	handler, err := session.NewHandler(&session.HandlerConfig{
		Service: svc,
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	return execAll(ctx, handler, lines)
}

func execAll(ctx context.Context, handler *session.Handler, lines [][]string) error {
	for _, args := range lines {
		if _, err := handler.Execute(ctx, args); err != nil {
			return err
		}
	}
	return nil
}

var championsCmd = &cobra.Command{
	Use:   "champions",
	Short: "List champions with their saved builds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCommands(cmd, []string{"sort", sortOrder})
	},
}

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List completed items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCommands(cmd, []string{"items"})
	},
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List the item components",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCommands(cmd, []string{"components"})
	},
}

var rankCmd = &cobra.Command{
	Use:   "rank [component...]",
	Short: "Rank champions by the components you hold",
	Long: `Rank champions by how many of the given components their saved builds use.
Repeat a component to count it more than once:

  notebook rank "B.F. Sword" "B.F. Sword" "Recurve Bow"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := make([][]string, 0, len(args)+1)
		for _, component := range args {
			lines = append(lines, []string{"add", component})
		}
		lines = append(lines, []string{"rank"})
		return runCommands(cmd, lines...)
	},
}

var assignCmd = &cobra.Command{
	Use:   "assign <champion> <item>...",
	Short: "Add items to a champion and save",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := [][]string{{"select", args[0]}}
		for _, item := range args[1:] {
			lines = append(lines, []string{"assign", item})
		}
		lines = append(lines, []string{"save"})
		return runCommands(cmd, lines...)
	},
}

var unassignCmd = &cobra.Command{
	Use:   "unassign <champion> <item>",
	Short: "Remove one item from a champion and save",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommands(cmd,
			[]string{"remove", args[0], args[1]},
			[]string{"save"},
		)
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear <champion>",
	Short: "Remove every item from a champion and save",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommands(cmd,
			[]string{"clear", args[0]},
			[]string{"save"},
		)
	},
}

func init() {
	championsCmd.Flags().StringVar(&sortOrder, "sort", "roster", "roster, name, cost or score")
}

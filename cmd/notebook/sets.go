package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tft-notebook/internal/ingest"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the sets in the game data and their --set index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient(cfg)
		if err != nil {
			return err
		}

		doc, err := client.FetchDocument(cmd.Context())
		if err != nil {
			return err
		}

		sets, err := ingest.ListSets(doc)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Index", "Name", "Mutator", "Number", ""})
		for _, set := range sets {
			marker := ""
			if set.Index == cfg.SetIndex {
				marker = "*"
			}
			table.Append([]string{
				strconv.Itoa(set.Index),
				set.Name,
				set.Mutator,
				strconv.Itoa(set.Number),
				marker,
			})
		}
		table.Render()
		return nil
	},
}

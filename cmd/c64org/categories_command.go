package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chris-edwards-pub/c64-dir-organizer/internal/classify"
)

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the active category table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			classifier, err := classify.New(cfg.Table())
			if err != nil {
				return err
			}
			entries := classifier.Categories()

			if jsonOut {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{entry.Name, entry.Extension})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Category", "Extension"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the table as JSON")
	return cmd
}

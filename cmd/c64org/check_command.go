package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chris-edwards-pub/c64-dir-organizer/internal/config"
	"github.com/chris-edwards-pub/c64-dir-organizer/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "check <source> <destination>",
		Short: "Run preflight checks without organizing anything",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve source: %w", err)
			}
			destination, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve destination: %w", err)
			}

			results := preflight.Run(source, destination)

			if jsonOut {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(results))
				for _, result := range results {
					status := "FAIL"
					if result.Passed {
						status = "OK"
					}
					rows = append(rows, []string{result.Name, status, result.Detail})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Check", "Status", "Detail"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
			}

			if !preflight.AllPassed(results) {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print results as JSON")
	return cmd
}

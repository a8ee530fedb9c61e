package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag)
	run := &organizeRun{ctx: ctx}

	rootCmd := &cobra.Command{
		Use:   "c64org <source> <destination>",
		Short: "Organize C64 disk and tape images into category directories",
		Long: `c64org classifies files by extension into category directories (D64, PRG,
TAP, ...) and buckets each file under the first character of its filename
(A-Z, or 0_9 for non-alphabetic leads).`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run.execute(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level")

	rootCmd.Flags().StringVarP(&run.action, "action", "a", "", "Action to perform: move or copy (default from config, move)")
	rootCmd.Flags().BoolVarP(&run.recursive, "recursive", "r", false, "Recursively search for files")
	rootCmd.Flags().BoolVarP(&run.verbose, "verbose", "v", false, "Enable verbose output showing each operation")
	rootCmd.Flags().BoolVarP(&run.dryRun, "dry-run", "d", false, "Simulate the run without making any changes")
	rootCmd.Flags().BoolVar(&run.force, "force", false, "Overwrite existing files during moves without prompting")
	rootCmd.Flags().BoolVar(&run.jsonOut, "json", false, "Print the run summary as JSON")

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newCategoriesCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

package main

import (
	"github.com/spf13/cobra"
)

const version = "1.0.0"

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	flags := &convertFlags{}

	rootCmd := &cobra.Command{
		Use:   "stremport [input.html]",
		Short: "Convert a Stremio library export to Trakt import JSON",
		Long: `stremport extracts movies, shows, and episodes from a saved Stremio
library page and re-emits them in the JSON format the Trakt importer accepts.

The input is an HTML file (or stdin) saved from Stremio's Library view; the
output is a JSON array on stdout or in the file named with --output. Nothing
is uploaded anywhere — hand the file to the importer yourself.

Examples:
  stremport library.html > trakt.json
  stremport library.html -o trakt.json --watched-only
  cat library.html | stremport --min-progress 50`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(ctx, cmd, args, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Diagnostic log format (console, json)")

	rootCmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output JSON file (default: stdout)")
	rootCmd.Flags().BoolVar(&flags.noWatchlist, "no-watchlist", false, "Do not add watchlisted_at to entries")
	rootCmd.Flags().BoolVar(&flags.useCurrentDate, "use-current-date", false, "Use the current date instead of \"unknown\" for watched_at")
	rootCmd.Flags().BoolVar(&flags.watchedOnly, "watched-only", false, "Only include entries that are considered watched")
	rootCmd.Flags().Float64Var(&flags.minProgress, "min-progress", 0, "Minimum progress percentage to include")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

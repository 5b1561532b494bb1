package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"stremport/internal/stremio"
	"stremport/internal/trakt"
)

type convertFlags struct {
	outputPath     string
	noWatchlist    bool
	useCurrentDate bool
	watchedOnly    bool
	minProgress    float64
}

func runConvert(ctx *commandContext, cmd *cobra.Command, args []string, flags *convertFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger(cmd)
	if err != nil {
		return err
	}

	items, err := scanInput(cmd, args)
	if err != nil {
		return err
	}

	summary := stremio.Summarize(items)
	logger.Info("found items",
		"total", summary.Total,
		"movies", summary.Movies,
		"shows", summary.Shows,
		"episodes", summary.Episodes,
		"watched", summary.Watched,
	)

	opts := trakt.Options{
		AddWatchlist:     cfg.Output.AddWatchlist && !flags.noWatchlist,
		MarkUnknownDates: cfg.Output.UseUnknownDates && !flags.useCurrentDate,
		WatchedOnly:      cfg.Output.WatchedOnly || flags.watchedOnly,
		MinProgress:      cfg.Output.MinProgress,
	}
	if cmd.Flags().Changed("min-progress") {
		opts.MinProgress = flags.minProgress
	}

	entries := trakt.Convert(items, opts, time.Now())

	out := cmd.OutOrStdout()
	if flags.outputPath != "" {
		file, err := os.Create(flags.outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer file.Close()
		out = file
	}
	if err := trakt.WriteJSON(out, entries); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if flags.outputPath != "" {
		logger.Info("exported entries", "count", len(entries), "output", flags.outputPath)
	} else {
		logger.Info("exported entries", "count", len(entries))
	}
	return nil
}

// scanInput reads the named file (or stdin) and scans it, mapping the two
// fatal conditions to actionable errors.
func scanInput(cmd *cobra.Command, args []string) ([]stremio.Item, error) {
	var in io.Reader = cmd.InOrStdin()
	if len(args) > 0 {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		in = file
	}

	items, err := stremio.Scan(in)
	if err != nil {
		return nil, fmt.Errorf("%w; provide a valid Stremio library export", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w; make sure the page was saved from Stremio's Library view and contains %q elements",
			stremio.ErrNoItems, stremio.ContainerClass)
	}
	return items, nil
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"stremport/internal/stremio"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect [input.html]",
		Short: "List the items discovered in an export without converting",
		Long: `inspect runs only the scanner and shows what it recovered from the
export: identifiers, kinds, titles, episode numbers, progress, and watch
state. Useful for checking an export before committing to a conversion.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if jsonOut {
				return writeJSON(cmd, items)
			}

			headers := []string{"ID", "TYPE", "TITLE", "S/E", "PROGRESS", "WATCHED"}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{
					item.ImdbID,
					itemKindLabel(item),
					item.Title,
					episodeLabel(item),
					progressLabel(item),
					watchedLabel(item),
				})
			}

			if stdoutIsTerminal(cmd) {
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, []columnAlignment{
					alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft,
				}))
				return nil
			}
			for _, row := range rows {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(row, "\t"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the raw scanned items as JSON")

	return cmd
}

func itemKindLabel(item stremio.Item) string {
	if item.IsEpisode() {
		return "episode"
	}
	return string(item.Kind)
}

func episodeLabel(item stremio.Item) string {
	if !item.IsEpisode() {
		return ""
	}
	return fmt.Sprintf("S%02dE%02d", *item.Season, *item.Episode)
}

func progressLabel(item stremio.Item) string {
	if item.Progress == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f%%", item.Progress)
}

func watchedLabel(item stremio.Item) string {
	if item.IsWatched() {
		return "yes"
	}
	return ""
}

func stdoutIsTerminal(cmd *cobra.Command) bool {
	file, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

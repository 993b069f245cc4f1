package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/records"
	"github.com/vancomm/minesweeper-term/internal/repository"
	"github.com/vancomm/minesweeper-term/internal/term"
)

func printGuide(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Keys:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, k := range term.Keys {
		fmt.Fprintf(tw, "  %s\t%s\n", k.Key, k.Description)
	}
	tw.Flush()

	fmt.Fprintln(w, "\nPresets:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range cfg.Presets {
		name := p.Name
		if p.Default {
			name += " (default)"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", name, p.ShortName, p.Description())
	}
	tw.Flush()
}

// recordsFilter builds the leaderboard filter from the records command's
// flags and optional preset argument.
func recordsFilter(cfg *config.Config, args []string) (repository.HighscoreFilter, int, error) {
	fs := flag.NewFlagSet("records", flag.ContinueOnError)
	player := fs.String("player", "", "only show this player's records")
	limit := fs.Int("limit", 20, "number of records, 0 for all")
	var filter repository.HighscoreFilter
	if err := fs.Parse(args); err != nil {
		return filter, 0, err
	}

	if *player != "" {
		filter.Username = player
	}
	if fs.NArg() > 0 {
		preset, ok := cfg.FindPreset(fs.Arg(0))
		if !ok {
			return filter, 0, fmt.Errorf("preset '%s': %w", fs.Arg(0), config.ErrUnknownPreset)
		}
		// presets that fit the terminal have no fixed size to filter on
		if preset.Width > 0 && preset.Height > 0 {
			filter.Params = &mines.Params{
				Width:           preset.Width,
				Height:          preset.Height,
				MineCount:       preset.MineCount,
				UseQuestionMark: cfg.UseQuestionMark,
			}
		}
	}
	return filter, *limit, nil
}

func listRecords(ctx context.Context, cfg *config.Config, args []string) int {
	filter, limit, err := recordsFilter(cfg, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return exitConfigError
	}

	url, err := config.DbURL(cfg.Records.URL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfigError
	}
	store, err := records.Open(ctx, url, cfg.Records.Player)
	if err != nil {
		log.WithError(err).Error("unable to open records")
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}
	defer store.Close()

	scores, err := store.Best(ctx, filter, limit)
	if err != nil {
		log.WithError(err).Error("unable to fetch records")
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}
	if len(scores) == 0 {
		fmt.Println("No records yet.")
		return 0
	}
	for _, line := range records.Table(scores) {
		fmt.Println(line)
	}
	return 0
}

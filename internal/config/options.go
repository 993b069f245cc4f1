package config

import (
	"errors"
	"fmt"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

var (
	ErrUnknownPreset   = errors.New("preset was not found")
	ErrMinesAndDensity = errors.New("it is not allowed to specify both a number of mines and density at the same time")
	ErrDensity         = errors.New("density must be between 1 and 99")
	ErrTooWide         = errors.New("field is too wide")
	ErrTooHigh         = errors.New("field is too high")
)

// PlayOptions are the play command's flags. A nil field was not given.
type PlayOptions struct {
	Preset       *string `schema:"preset"`
	Width        *int    `schema:"width"`
	Height       *int    `schema:"height"`
	Mines        *int    `schema:"mines"`
	Density      *int    `schema:"density"`
	QuestionMark *bool   `schema:"question_mark"`
	NoSeparator  *bool   `schema:"no_separator"`
	NoMineCount  *bool   `schema:"no_mine_count"`
	Sound        *bool   `schema:"sound"`
	Debug        *bool   `schema:"debug"`
}

func DecodePlayOptions(src map[string][]string) (PlayOptions, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var opts PlayOptions
	err := dec.Decode(&opts, src)
	return opts, err
}

// Play is everything a round needs once options, config and terminal size
// have been combined.
type Play struct {
	Params        mines.Params
	ShowSeparator bool
	ShowMineCount bool
	Sound         bool
	Debug         bool
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

/*
Resolve applies opts on top of the selected preset. A zero width or height
fits the terminal (termWidth x termHeight cells); a zero mine count means
15% of the cells.
*/
func (c *Config) Resolve(opts PlayOptions, termWidth, termHeight int) (Play, error) {
	preset := c.DefaultPreset()
	if opts.Preset != nil && *opts.Preset != "" {
		p, ok := c.FindPreset(*opts.Preset)
		if !ok {
			return Play{}, fmt.Errorf("preset '%s': %w", *opts.Preset, ErrUnknownPreset)
		}
		preset = p
	}

	if opts.Density != nil && (*opts.Density < 1 || *opts.Density > 99) {
		return Play{}, ErrDensity
	}
	if opts.Density != nil && opts.Mines != nil {
		return Play{}, ErrMinesAndDensity
	}

	play := Play{
		Params: mines.Params{
			Width:           preset.Width,
			Height:          preset.Height,
			MineCount:       preset.MineCount,
			UseQuestionMark: c.UseQuestionMark,
		},
		ShowSeparator: c.Formats.Separator.Char != "" && !isTrue(opts.NoSeparator),
		ShowMineCount: c.ShowMineCount && !isTrue(opts.NoMineCount),
		Sound:         c.Sound,
		Debug:         c.Development() || isTrue(opts.Debug),
	}
	if opts.Width != nil {
		play.Params.Width = *opts.Width
	}
	if opts.Height != nil {
		play.Params.Height = *opts.Height
	}
	if opts.Mines != nil {
		play.Params.MineCount = *opts.Mines
	}
	if opts.QuestionMark != nil {
		play.Params.UseQuestionMark = *opts.QuestionMark
	}
	if opts.Sound != nil {
		play.Sound = *opts.Sound
	}

	p := &play.Params

	if p.Width < 0 {
		return Play{}, fmt.Errorf("width must be greater than or equal to 0: %w", mines.ErrInvalidDimensions)
	}
	maxWidth := termWidth
	if play.ShowSeparator {
		maxWidth = (termWidth - 1) / 2
	}
	if p.Width > maxWidth {
		return Play{}, fmt.Errorf("%d columns: %w", p.Width, ErrTooWide)
	}
	if p.Width == 0 {
		p.Width = maxWidth
	}

	if p.Height < 0 {
		return Play{}, fmt.Errorf("height must be greater than or equal to 0: %w", mines.ErrInvalidDimensions)
	}
	maxHeight := termHeight - 1
	if play.ShowMineCount {
		maxHeight--
	}
	if p.Height > maxHeight {
		return Play{}, fmt.Errorf("%d rows: %w", p.Height, ErrTooHigh)
	}
	if p.Height == 0 {
		p.Height = maxHeight
	}

	if opts.Density != nil {
		p.MineCount = p.CellCount() * *opts.Density / 100
	}
	if p.MineCount < 0 {
		return Play{}, fmt.Errorf("mine count must be greater than or equal to 0: %w", mines.ErrInvalidMineCount)
	}
	if p.MineCount > p.CellCount() {
		return Play{}, fmt.Errorf("number of mines must be lower or equal to number of cells: %w", mines.ErrInvalidMineCount)
	}
	if p.MineCount == 0 {
		p.MineCount = max(1, p.CellCount()*15/100)
	}

	if err := p.Validate(); err != nil {
		return Play{}, err
	}
	return play, nil
}

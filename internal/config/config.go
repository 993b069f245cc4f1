package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

//go:embed config.json
var defaultConfig []byte

var ErrInvalidConfig = errors.New("invalid config")

type Preset struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MineCount int    `json:"mine_count"`
	Default   bool   `json:"default"`
}

// Description is the preset as shown by the guide, e.g. "9x9, 10 mines".
func (p Preset) Description() string {
	if p.Width == 0 && p.Height == 0 {
		return "fit the terminal"
	}
	return fmt.Sprintf("%dx%d, %d mines", p.Width, p.Height, p.MineCount)
}

// Format describes how one kind of cell is drawn. Colors are tcell color
// names or #rrggbb; empty means the terminal default.
type Format struct {
	Char string `json:"char"`
	Fg   string `json:"fg"`
	Bg   string `json:"bg"`
}

type Formats struct {
	Selected           Format   `json:"selected"`
	Separator          Format   `json:"separator"`
	Unknown            Format   `json:"unknown"`
	QuestionMark       Format   `json:"question_mark"`
	Empty              Format   `json:"empty"`
	Flagged            Format   `json:"flagged"`
	IncorrectlyFlagged Format   `json:"incorrectly_flagged"`
	Mine               Format   `json:"mine"`
	HitMine            Format   `json:"hit_mine"`
	Numbers            []Format `json:"numbers"`
}

type Log struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Records struct {
	Enabled bool   `json:"enabled"`
	Player  string `json:"player"`
	URL     string `json:"url"`
}

type Config struct {
	Mode            string   `json:"mode"`
	Presets         []Preset `json:"presets"`
	UseQuestionMark bool     `json:"use_question_mark"`
	ShowMineCount   bool     `json:"show_mine_count"`
	Formats         Formats  `json:"formats"`
	Log             Log      `json:"log"`
	Sound           bool     `json:"sound"`
	Records         Records  `json:"records"`
}

// Default returns the built-in configuration.
func Default() *Config {
	var c Config
	if err := json.Unmarshal(defaultConfig, &c); err != nil {
		panic(fmt.Sprintf("embedded config.json: %s", err))
	}
	return &c
}

// Load reads path on top of the built-in configuration. An empty path
// yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
		// slices are replaced, not merged element by element
		presets, numbers := c.Presets, c.Formats.Numbers
		c.Presets, c.Formats.Numbers = nil, nil
		if err := json.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
		if c.Presets == nil {
			c.Presets = presets
		}
		if c.Formats.Numbers == nil {
			c.Formats.Numbers = numbers
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("%w: no presets", ErrInvalidConfig)
	}
	for _, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("%w: preset without a name", ErrInvalidConfig)
		}
	}
	if n := len(c.Formats.Numbers); n != 8 {
		return fmt.Errorf("%w: %d number formats, want 8", ErrInvalidConfig, n)
	}
	return nil
}

func (c *Config) Development() bool {
	return c.Mode == "development" || Development()
}

// DefaultPreset is the first preset marked default, or the first preset.
func (c *Config) DefaultPreset() Preset {
	for _, p := range c.Presets {
		if p.Default {
			return p
		}
	}
	return c.Presets[0]
}

// FindPreset matches name against preset names, then against short names
// using the first letter of name.
func (c *Config) FindPreset(name string) (Preset, bool) {
	if name == "" {
		return Preset{}, false
	}
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range c.Presets {
		if p.ShortName != "" && p.ShortName[0] == name[0] {
			return p, true
		}
	}
	return Preset{}, false
}

func (c *Config) Fields() logrus.Fields {
	return logrus.Fields{
		"mode":              c.Mode,
		"presets":           len(c.Presets),
		"use_question_mark": c.UseQuestionMark,
		"show_mine_count":   c.ShowMineCount,
		"log_file":          c.Log.File,
		"sound":             c.Sound,
		"records":           c.Records.Enabled,
		"player":            c.Records.Player,
	}
}

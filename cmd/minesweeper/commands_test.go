package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

func TestPrintGuide(t *testing.T) {
	var buf bytes.Buffer
	printGuide(&buf, config.Default())

	out := buf.String()
	assert.Contains(t, out, "Keys:")
	assert.Contains(t, out, "Shift+Arrow")
	assert.Contains(t, out, "Presets:")
	assert.Contains(t, out, "beginner (default)")
	assert.Contains(t, out, "30x16, 99 mines")
	assert.Contains(t, out, "fit the terminal")
}

func TestRecordsFilter(t *testing.T) {
	cfg := config.Default()

	filter, limit, err := recordsFilter(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 20, limit)
	assert.Nil(t, filter.Username)
	assert.Nil(t, filter.Params)

	filter, limit, err = recordsFilter(cfg, []string{"-player", "someone", "-limit", "3", "e"})
	require.NoError(t, err)
	assert.Equal(t, 3, limit)
	require.NotNil(t, filter.Username)
	assert.Equal(t, "someone", *filter.Username)
	assert.Equal(t, &mines.Params{Width: 30, Height: 16, MineCount: 99}, filter.Params)

	filter, _, err = recordsFilter(cfg, []string{"max"})
	require.NoError(t, err)
	assert.Nil(t, filter.Params)

	_, _, err = recordsFilter(cfg, []string{"huge"})
	assert.ErrorIs(t, err, config.ErrUnknownPreset)
}

package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopwatch(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	sw := NewStopwatch(clock.Now)

	assert.False(t, sw.Running())
	assert.Zero(t, sw.Elapsed())

	sw.Start()
	clock.Advance(1500 * time.Millisecond)
	sw.Start()
	assert.Equal(t, 1500*time.Millisecond, sw.Elapsed())

	sw.Stop()
	sw.Stop()
	clock.Advance(time.Hour)
	assert.Equal(t, 1500*time.Millisecond, sw.Elapsed())

	sw.Start()
	clock.Advance(500 * time.Millisecond)
	assert.True(t, sw.Running())
	assert.Equal(t, 2*time.Second, sw.Elapsed())
}

func TestSummaryElapsedSeconds(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "0.0"},
		{1234 * time.Millisecond, "1.2"},
		{61 * time.Second, "61.0"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Summary{Elapsed: test.elapsed}.ElapsedSeconds())
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "JumpToUnknownLeft", JumpToUnknownLeft.String())
	assert.Equal(t, "HintMines", HintMines.String())
	assert.Equal(t, "Command(200)", Command(200).String())
}

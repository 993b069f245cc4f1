package sound

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-term/internal/game"
)

func TestOpenDisabled(t *testing.T) {
	p := Open(false, logrus.New())
	assert.IsType(t, Nop{}, p)
	p.Play(game.EventWon)
	p.Close()
}

func TestCues(t *testing.T) {
	assert.NotContains(t, cues, game.EventReveal)
	for _, e := range []game.Event{game.EventFlag, game.EventMineHit, game.EventWon} {
		assert.Contains(t, cues, e, e.String())
	}
}

func TestMelody(t *testing.T) {
	sr := beep.SampleRate(8000)
	tones := cues[game.EventWon]

	st, err := melody(sr, tones)
	require.NoError(t, err)

	want := 0
	for _, tone := range tones {
		want += sr.N(tone.duration)
	}

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := st.Stream(buf)
		total += n
		for _, s := range buf[:n] {
			assert.InDelta(t, 0, s[0], 1)
			assert.Equal(t, s[0], s[1])
		}
		if !ok {
			break
		}
	}
	assert.Equal(t, want, total)
}

func TestMelodyRejectsHighFrequency(t *testing.T) {
	_, err := melody(beep.SampleRate(1000), []tone{{880, 0}})
	assert.Error(t, err)
}

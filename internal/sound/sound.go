package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-term/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player turns session events into audio cues.
type Player interface {
	Play(game.Event)
	Close()
}

type Nop struct{}

func (Nop) Play(game.Event) {}
func (Nop) Close()          {}

type tone struct {
	freq     float64
	duration time.Duration
}

var cues = map[game.Event][]tone{
	game.EventFlag: {
		{880, 40 * time.Millisecond},
	},
	game.EventMineHit: {
		{220, 150 * time.Millisecond},
		{147, 350 * time.Millisecond},
	},
	game.EventWon: {
		{523.25, 120 * time.Millisecond},
		{659.25, 120 * time.Millisecond},
		{783.99, 240 * time.Millisecond},
	},
}

func melody(sr beep.SampleRate, tones []tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sr, t.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sr.N(t.duration), sine))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}, nil
}

// Speaker plays cues on the default audio device.
type Speaker struct {
	mu     sync.Mutex
	log    *logrus.Logger
	mixer  *beep.Mixer
	closed bool
}

func NewSpeaker(log *logrus.Logger) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	s := &Speaker{log: log, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Open returns a [Speaker], or [Nop] when sound is off or no audio device
// could be opened.
func Open(enabled bool, log *logrus.Logger) Player {
	if !enabled {
		return Nop{}
	}
	s, err := NewSpeaker(log)
	if err != nil {
		log.WithError(err).Warn("audio initialization failed")
		return Nop{}
	}
	return s
}

func (s *Speaker) Play(e game.Event) {
	tones, ok := cues[e]
	if !ok {
		return
	}
	st, err := melody(sampleRate, tones)
	if err != nil {
		s.log.WithError(err).WithField("event", e).Error("unable to build cue")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

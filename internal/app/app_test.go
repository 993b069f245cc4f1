package app

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/game"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/repository"
)

func TestMain(m *testing.M) {
	mines.Log.SetOutput(io.Discard)
	game.Log.SetOutput(io.Discard)
	m.Run()
}

type fakeStore struct {
	saved   []game.Summary
	queries []repository.HighscoreFilter
	scores  []repository.Highscore
}

func (s *fakeStore) Save(_ context.Context, summary game.Summary) error {
	s.saved = append(s.saved, summary)
	return nil
}

func (s *fakeStore) Best(_ context.Context, filter repository.HighscoreFilter, limit int) ([]repository.Highscore, error) {
	s.queries = append(s.queries, filter)
	return s.scores, nil
}

func (s *fakeStore) Close() {}

type fakePlayer struct {
	events []game.Event
}

func (p *fakePlayer) Play(e game.Event) { p.events = append(p.events, e) }
func (p *fakePlayer) Close()            {}

func newTestApp(t *testing.T, width, height int, layout ...mines.Pos) (*App, tcell.SimulationScreen, *fakeStore, *fakePlayer) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 10)
	t.Cleanup(screen.Fini)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	params := mines.Params{Width: width, Height: height, MineCount: len(layout)}
	store := &fakeStore{}
	player := &fakePlayer{}
	a := New(logger, config.Default(), config.Play{
		Params:        params,
		ShowSeparator: true,
		ShowMineCount: true,
	}, screen, store, player)
	a.newField = func(tracker *mines.ChangeTracker) (*mines.Field, error) {
		return mines.NewWithMines(params, layout, tracker)
	}
	return a, screen, store, player
}

func line(screen tcell.SimulationScreen, y int) string {
	var b strings.Builder
	w, _ := screen.Size()
	for x := range w {
		c, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(c)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestAppLost(t *testing.T) {
	a, screen, store, player := newTestApp(t, 1, 1, mines.Pos{Row: 0, Column: 0})

	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	summary, err := a.Start(context.Background())
	require.NoError(t, err)

	assert.Equal(t, game.Lost, summary.Result)
	assert.Equal(t, mines.Params{Width: 1, Height: 1, MineCount: 1}, summary.Params)
	require.Len(t, store.saved, 1)
	assert.Equal(t, game.Lost, store.saved[0].Result)
	assert.Empty(t, store.queries)
	assert.Equal(t, []game.Event{game.EventMineHit}, player.events)

	assert.Equal(t, " *", line(screen, 1))
	assert.Equal(t, "You hit a mine!", line(screen, 2))
	assert.Equal(t, "Press Enter to start a new game, Q to quit", line(screen, 4))
}

func TestAppWonThenCanceled(t *testing.T) {
	a, screen, store, player := newTestApp(t, 3, 1, mines.Pos{Row: 0, Column: 2})
	name := "someone"
	store.scores = []repository.Highscore{{Username: &name, ElapsedMs: 1200}}

	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	summary, err := a.Start(context.Background())
	require.NoError(t, err)

	assert.Equal(t, game.Canceled, summary.Result)
	require.Len(t, store.saved, 1)
	assert.Equal(t, game.Won, store.saved[0].Result)
	require.Len(t, store.queries, 1)
	assert.Equal(t, &mines.Params{Width: 3, Height: 1, MineCount: 1}, store.queries[0].Params)
	assert.Equal(t, []game.Event{game.EventWon}, player.events)

	assert.Equal(t, "Game canceled.", line(screen, 2))
	assert.Equal(t, "Press Enter to start a new game, Q to quit", line(screen, 3))
}

func TestAppInterrupted(t *testing.T) {
	a, _, store, _ := newTestApp(t, 3, 3, mines.Pos{Row: 1, Column: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan game.Summary)
	go func() {
		summary, err := a.Start(ctx)
		assert.NoError(t, err)
		done <- summary
	}()

	select {
	case summary := <-done:
		assert.Equal(t, game.Canceled, summary.Result)
	case <-time.After(5 * time.Second):
		t.Fatal("round was not interrupted")
	}
	assert.Empty(t, store.saved)
}

func TestAppCtrlCAtPrompt(t *testing.T) {
	a, screen, _, _ := newTestApp(t, 1, 1, mines.Pos{Row: 0, Column: 0})

	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	summary, err := a.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.Lost, summary.Result)
}

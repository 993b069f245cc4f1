package app

import (
	"context"
	"hash/maphash"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-term/internal/game"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/records"
	"github.com/vancomm/minesweeper-term/internal/repository"
	"github.com/vancomm/minesweeper-term/internal/term"
)

const storeTimeout = 5 * time.Second

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

type round struct {
	field   *mines.Field
	session *game.Session
}

func (a *App) newRound() (*round, error) {
	tracker := mines.NewChangeTracker()
	field, err := a.newField(tracker)
	if err != nil {
		return nil, err
	}
	a.log.WithField("params", field.Params()).Info("round started")
	a.log.Debugf("mine layout:\n%s", field.MineLayout())

	session := game.NewSession(field, tracker, a.renderer, game.Options{
		Debug:    a.play.Debug,
		Listener: a.player.Play,
	})
	return &round{field: field, session: session}, nil
}

// playRound feeds screen events to the session until the round ends. An
// interrupt cancels the round and is reported back.
func (a *App) playRound(r *round) (summary game.Summary, interrupted bool) {
	r.session.Start()
	for !r.session.Done() {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			interrupted = true
			r.session.Handle(game.Cancel)
		case *tcell.EventInterrupt:
			interrupted = true
			r.session.Handle(game.Cancel)
		case *tcell.EventResize:
			a.screen.Sync()
			r.session.Handle(game.Redraw)
		case *tcell.EventKey:
			if cmd := term.Decode(ev); cmd != game.None {
				r.session.Handle(cmd)
			}
		}
	}
	summary, _ = r.session.Summary()
	return summary, interrupted
}

func (a *App) save(ctx context.Context, s game.Summary) {
	if s.Result == game.Canceled {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer cancel()
	if err := a.store.Save(ctx, s); err != nil {
		a.log.WithError(err).Error("unable to save record")
	}
}

func (a *App) best(ctx context.Context, s game.Summary) []string {
	if s.Result != game.Won {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	scores, err := a.store.Best(ctx, repository.HighscoreFilter{Params: &s.Params}, bestCount)
	if err != nil {
		a.log.WithError(err).WithFields(logrus.Fields{
			"params": s.Params,
		}).Error("unable to fetch best times")
		return nil
	}
	return records.BestLines(scores)
}

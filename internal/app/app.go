package app

import (
	"context"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/game"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/records"
	"github.com/vancomm/minesweeper-term/internal/sound"
	"github.com/vancomm/minesweeper-term/internal/term"
)

const bestCount = 5

type App struct {
	log      *logrus.Logger
	screen   tcell.Screen
	renderer *term.Renderer
	store    records.Store
	player   sound.Player
	play     config.Play
	rand     *rand.Rand
	newField func(*mines.ChangeTracker) (*mines.Field, error)
}

// New prepares rounds with the resolved play settings. The caller owns
// screen, store and player.
func New(
	logger *logrus.Logger,
	cfg *config.Config,
	play config.Play,
	screen tcell.Screen,
	store records.Store,
	player sound.Player,
) *App {
	app := &App{
		log:    logger,
		screen: screen,
		renderer: term.NewRenderer(screen, term.NewTheme(cfg.Formats), term.Options{
			ShowSeparator: play.ShowSeparator,
			ShowMineCount: play.ShowMineCount,
		}),
		store:  store,
		player: player,
		play:   play,
		rand:   createRand(),
	}
	app.newField = func(tracker *mines.ChangeTracker) (*mines.Field, error) {
		return mines.New(app.play.Params, app.rand, tracker)
	}
	return app
}

/*
Start plays rounds until the player quits or ctx is canceled, and returns
the summary of the last round. Cancellation is delivered to the event loop
as a tcell interrupt, which cancels the round in progress.
*/
func (a *App) Start(ctx context.Context) (game.Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		if err := a.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
			a.log.WithError(err).Debug("unable to post interrupt")
		}
		return nil
	})

	var last game.Summary
	g.Go(func() error {
		defer cancel()
		var err error
		last, err = a.run(ctx)
		return err
	})

	err := g.Wait()
	return last, err
}

func (a *App) run(ctx context.Context) (game.Summary, error) {
	for {
		r, err := a.newRound()
		if err != nil {
			return game.Summary{}, err
		}
		summary, interrupted := a.playRound(r)
		a.save(ctx, summary)
		if interrupted {
			return summary, nil
		}

		a.renderer.DrawSummary(r.field, summary, a.best(ctx, summary))

		switch a.prompt() {
		case term.PromptNewGame:
			continue
		default:
			return summary, nil
		}
	}
}

func (a *App) prompt() term.PromptAction {
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return term.PromptQuit
		case *tcell.EventInterrupt:
			return term.PromptInterrupt
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if action := term.DecodePrompt(ev); action != term.PromptNone {
				return action
			}
		}
	}
}

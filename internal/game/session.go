package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

var Log = logrus.New()

type DisplayMode uint8

const (
	Default DisplayMode = iota
	HideAll
	ShowMines
	HintMines
)

func (m DisplayMode) String() string {
	switch m {
	case Default:
		return "Default"
	case HideAll:
		return "HideAll"
	case ShowMines:
		return "ShowMines"
	case HintMines:
		return "HintMines"
	default:
		return fmt.Sprintf("DisplayMode(%d)", uint8(m))
	}
}

// Frame is what a view needs to paint the round. Views must treat it as
// read-only.
type Frame struct {
	Field     *mines.Field
	Selection *mines.Selection
	Mode      DisplayMode
}

// View paints a round. Draw repaints everything, DrawCells only the given
// cells and the mine counter.
type View interface {
	Draw(Frame)
	DrawCells(Frame, []mines.Pos)
}

// Event is reported to the session's listener after a command changed the
// field.
type Event uint8

const (
	EventReveal Event = iota
	EventFlag
	EventMineHit
	EventWon
)

func (e Event) String() string {
	switch e {
	case EventReveal:
		return "reveal"
	case EventFlag:
		return "flag"
	case EventMineHit:
		return "mine hit"
	case EventWon:
		return "won"
	default:
		return fmt.Sprintf("Event(%d)", uint8(e))
	}
}

type Options struct {
	// Debug enables the HintMines command.
	Debug bool
	// Now is the stopwatch clock, [time.Now] if nil.
	Now func() time.Time
	// Listener, if set, is called synchronously for every [Event].
	Listener func(Event)
}

/*
Session runs a single round: it turns commands into selection moves and
field batches and tells the view what to repaint. It is not safe for
concurrent use; commands are handled one at a time.
*/
type Session struct {
	field     *mines.Field
	reader    *mines.ChangeReader
	selection *mines.Selection
	stopwatch *Stopwatch
	view      View
	opts      Options

	mode       DisplayMode
	pausedMode DisplayMode
	resume     bool

	done   bool
	result Result
}

// NewSession wraps a fresh field. tracker must be the field's tracker.
func NewSession(field *mines.Field, tracker *mines.ChangeTracker, view View, opts Options) *Session {
	return &Session{
		field:     field,
		reader:    mines.NewChangeReader(tracker),
		selection: mines.NewSelection(field),
		stopwatch: NewStopwatch(opts.Now),
		view:      view,
		opts:      opts,
	}
}

func (s *Session) Field() *mines.Field { return s.field }

func (s *Session) Selection() *mines.Selection { return s.selection }

func (s *Session) Mode() DisplayMode { return s.mode }

func (s *Session) Done() bool { return s.done }

func (s *Session) Paused() bool { return s.mode == HideAll }

func (s *Session) Elapsed() time.Duration { return s.stopwatch.Elapsed() }

func (s *Session) frame() Frame {
	return Frame{Field: s.field, Selection: s.selection, Mode: s.mode}
}

// Start paints the initial frame.
func (s *Session) Start() {
	s.draw()
}

// Summary describes the round once it is over.
func (s *Session) Summary() (Summary, bool) {
	if !s.done {
		return Summary{}, false
	}
	return Summary{
		Result:  s.result,
		Elapsed: s.stopwatch.Elapsed(),
		Params:  s.field.Params(),
	}, true
}

// Handle processes one command and reports whether the round is over.
// Commands after the end of the round are ignored.
func (s *Session) Handle(cmd Command) bool {
	if s.done {
		return true
	}

	log := Log.WithField("command", cmd)

	if s.Paused() && cmd != Pause && cmd != Cancel && cmd != Redraw {
		log.Debug("ignored while paused")
		return false
	}

	switch cmd {
	case Reveal, Flag:
		s.apply(cmd == Flag)

	case ExpandUp, ExpandRight, ExpandDown, ExpandLeft:
		s.navigate(func() { s.selection.Expand(cmd.direction()) })

	case JumpToUnknownUp, JumpToUnknownRight, JumpToUnknownDown, JumpToUnknownLeft:
		s.navigate(func() { s.selection.Jump(cmd.direction()) })

	case MoveUp, MoveRight, MoveDown, MoveLeft:
		s.navigate(func() { s.selection.Step(cmd.direction()) })

	case MoveHome, MoveTop:
		s.navigate(func() { s.selection.Home(cmd == MoveTop) })

	case MoveEnd, MoveBottom:
		s.navigate(func() { s.selection.End(cmd == MoveBottom) })

	case Unselect:
		s.navigate(s.selection.Collapse)

	case Pause:
		s.togglePause()

	case Cancel:
		s.finish(Canceled)

	case Redraw:
		s.draw()

	case HintMines:
		if !s.opts.Debug {
			log.Debug("hints are disabled")
			break
		}
		if s.mode == HintMines {
			s.mode = Default
		} else {
			s.mode = HintMines
		}
		s.draw()
	}

	log.WithFields(logrus.Fields{
		"mode": s.mode,
		"done": s.done,
	}).Trace("command handled")

	return s.done
}

func (s *Session) apply(flagging bool) {
	s.stopwatch.Start()

	state := s.field.ApplyBatch(s.selection.Cells(), flagging)

	switch state {
	case mines.MineHit:
		s.notify(EventMineHit)
		s.finish(Lost)
	case mines.Completed:
		s.notify(EventWon)
		s.finish(Won)
	default:
		changes := s.reader.Next()
		if len(changes) == 0 {
			s.draw()
			return
		}
		cells := make([]mines.Pos, 0, len(changes))
		for _, c := range changes {
			cells = append(cells, c.Pos)
		}
		cells = append(cells, s.selection.Cells()...)
		s.view.DrawCells(s.frame(), cells)

		if flagging {
			s.notify(EventFlag)
		} else {
			s.notify(EventReveal)
		}
	}
}

// navigate repaints the cells that left or joined the selection.
func (s *Session) navigate(move func()) {
	before := s.selection.Cells()
	move()
	after := s.selection.Cells()

	cells := make([]mines.Pos, 0, len(before)+len(after))
	cells = append(cells, before...)
	for _, p := range after {
		if !slices.Contains(before, p) {
			cells = append(cells, p)
		}
	}
	s.view.DrawCells(s.frame(), cells)
}

func (s *Session) togglePause() {
	if s.mode == HideAll {
		s.mode = s.pausedMode
		if s.resume {
			s.stopwatch.Start()
		}
	} else {
		s.pausedMode = s.mode
		s.resume = s.stopwatch.Running()
		s.stopwatch.Stop()
		s.mode = HideAll
	}
	s.draw()
}

func (s *Session) finish(result Result) {
	s.stopwatch.Stop()
	s.done = true
	s.result = result

	Log.WithFields(logrus.Fields{
		"result":  result,
		"params":  s.field.Params(),
		"elapsed": s.stopwatch.Elapsed(),
	}).Info("round finished")

	if result == Canceled {
		return
	}
	s.selection.Clear()
	s.mode = ShowMines
	s.draw()
}

func (s *Session) draw() {
	s.reader.Skip()
	s.view.Draw(s.frame())
}

func (s *Session) notify(e Event) {
	if s.opts.Listener != nil {
		s.opts.Listener(e)
	}
}

package mines

import (
	"fmt"
	"iter"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Params struct {
	Width, Height, MineCount int
	UseQuestionMark          bool
}

func (p Params) CellCount() int {
	return p.Width * p.Height
}

func (p Params) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%dx%d: %w", p.Width, p.Height, ErrInvalidDimensions)
	}
	if p.MineCount < 1 || p.MineCount > p.CellCount() {
		return fmt.Errorf("%d mines on %dx%d: %w",
			p.MineCount, p.Width, p.Height, ErrInvalidMineCount)
	}
	return nil
}

// Params implements [fmt.Stringer]
func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

type FieldState uint8

const (
	Active FieldState = iota
	MineHit
	Completed
)

func (s FieldState) String() string {
	switch s {
	case Active:
		return "Active"
	case MineHit:
		return "MineHit"
	case Completed:
		return "Completed"
	default:
		return fmt.Sprintf("FieldState(%d)", uint8(s))
	}
}

type Field struct {
	params        Params
	width, height int
	cells         []Cell           /* row-major */
	unknown       map[int]struct{} /* indices of cells for which IsUnknown holds */
	flagCount     int
	state         FieldState
	hit           int
	tracker       *ChangeTracker
}

func newField(params Params, tracker *ChangeTracker) (*Field, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	f := &Field{
		params:  params,
		width:   params.Width,
		height:  params.Height,
		cells:   make([]Cell, params.CellCount()),
		unknown: make(map[int]struct{}, params.CellCount()),
		hit:     -1,
		tracker: tracker,
	}
	for i := range f.cells {
		f.cells[i].Pos = Pos{Row: i / f.width, Column: i % f.width}
		f.unknown[i] = struct{}{}
	}
	return f, nil
}

// New creates a field with params.MineCount mines picked uniformly at random
// without replacement. tracker may be nil.
func New(params Params, r *rand.Rand, tracker *ChangeTracker) (*Field, error) {
	f, err := newField(params, tracker)
	if err != nil {
		return nil, err
	}

	candidates := make([]int, len(f.cells))
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range params.MineCount {
		i := r.IntN(k)
		f.cells[candidates[i]].containsMine = true
		k--
		candidates[i] = candidates[k]
	}

	return f, nil
}

// NewWithMines creates a field with a fixed mine layout. The number of
// distinct positions must equal params.MineCount.
func NewWithMines(params Params, mines []Pos, tracker *ChangeTracker) (*Field, error) {
	f, err := newField(params, tracker)
	if err != nil {
		return nil, err
	}
	placed := 0
	for _, p := range mines {
		if !f.InBounds(p) {
			return nil, fmt.Errorf("mine at %s outside %s", p, params)
		}
		cell := f.at(p.Row, p.Column)
		if !cell.containsMine {
			cell.containsMine = true
			placed++
		}
	}
	if placed != params.MineCount {
		return nil, fmt.Errorf("%d distinct mines given for %s: %w",
			placed, params, ErrInvalidMineCount)
	}
	return f, nil
}

func (f *Field) Params() Params        { return f.params }
func (f *Field) Width() int            { return f.width }
func (f *Field) Height() int           { return f.height }
func (f *Field) CellCount() int        { return len(f.cells) }
func (f *Field) MineCount() int        { return f.params.MineCount }
func (f *Field) UseQuestionMark() bool { return f.params.UseQuestionMark }
func (f *Field) FlagCount() int        { return f.flagCount }
func (f *Field) UnknownCount() int     { return len(f.unknown) }
func (f *Field) State() FieldState     { return f.state }

// RemainingMines is the number of mines not yet flagged.
func (f *Field) RemainingMines() int {
	return f.params.MineCount - f.flagCount
}

// HitCell returns the mine that ended the round, if any.
func (f *Field) HitCell() (Pos, bool) {
	if f.hit < 0 {
		return Pos{}, false
	}
	return f.cells[f.hit].Pos, true
}

// Changes returns the tracker's log, or nil when the field is untracked.
func (f *Field) Changes() []Change {
	if f.tracker == nil {
		return nil
	}
	return f.tracker.Changes()
}

func (f *Field) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < f.height && p.Column >= 0 && p.Column < f.width
}

// Cell returns the cell at p.
//
// panics [AssertionError] if p is outside the field
func (f *Field) Cell(p Pos) *Cell {
	if !f.InBounds(p) {
		panic(AssertionError{fmt.Sprintf("cell %s outside %s", p, f.params)})
	}
	return f.at(p.Row, p.Column)
}

func (f *Field) at(row, column int) *Cell {
	return &f.cells[row*f.width+column]
}

func (f *Field) index(c *Cell) int {
	return c.Row*f.width + c.Column
}

// Cells yields every cell in row-major order.
func (f *Field) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range f.cells {
			if !yield(&f.cells[i]) {
				return
			}
		}
	}
}

/*
ApplyBatch reveals (flagging == false) or cycles the flag of (flagging ==
true) the given cells in order. A reveal batch stops at the first mine;
otherwise every cell that became Empty seeds a flood fill, and finally
every unknown cell whose neighbors are all open numbers is flagged. Any
transition that completes the field ends the batch.

panics [AssertionError] if the field is not Active or a position is out of
bounds
*/
func (f *Field) ApplyBatch(cells []Pos, flagging bool) FieldState {
	if f.state != Active {
		panic(AssertionError{"batch applied to a field in state " + f.state.String()})
	}

	log := Log.WithFields(logrus.Fields{
		"params":   f.params,
		"cells":    len(cells),
		"flagging": flagging,
	})

	var seeds []*Cell

	for _, p := range cells {
		cell := f.Cell(p)
		if flagging {
			f.cycleFlag(cell)
		} else if cell.IsUnknown() {
			if cell.containsMine {
				f.hit = f.index(cell)
				f.state = MineHit
				log.WithField("cell", p).Debug("mine hit")
				return f.state
			}
			n := cell.countAdjacentMines(f)
			f.update(cell, Revealed(n))
			if n == 0 {
				seeds = append(seeds, cell)
			}
		}

		if f.state != Active {
			log.Debug("completed during batch")
			return f.state
		}
	}

	if len(seeds) > 0 {
		f.floodFill(seeds)
		if f.state != Active {
			log.Debug("completed during flood fill")
			return f.state
		}
	}

	f.autoFlag()

	log.WithFields(logrus.Fields{
		"state":   f.state,
		"flags":   f.flagCount,
		"unknown": len(f.unknown),
	}).Debug("batch applied")

	return f.state
}

func (f *Field) cycleFlag(cell *Cell) {
	switch {
	case cell.IsFlagged():
		if f.params.UseQuestionMark {
			f.update(cell, QuestionMark)
		} else {
			f.update(cell, Unknown)
		}
	case cell.IsQuestionMark():
		f.update(cell, Unknown)
	case cell.IsUnknown():
		if f.flagCount < f.params.MineCount {
			f.update(cell, Flagged)
		}
	}
}

// floodFill opens the unknown, mine-free neighbors of every seed
// breadth-first; neighbors with no adjacent mines become seeds themselves.
func (f *Field) floodFill(seeds []*Cell) {
	queue := slices.Clone(seeds)
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		for near := range cell.AdjacentCells(f) {
			if !near.IsUnknown() || near.containsMine {
				continue
			}
			n := near.countAdjacentMines(f)
			f.update(near, Revealed(n))
			if f.state != Active {
				return
			}
			if n == 0 {
				queue = append(queue, near)
			}
		}
	}
}

// autoFlag flags every plain unknown cell that is surrounded by open cells
// only, at least one of them numbered. Cells next to any unopened cell are
// left alone even when their status could be deduced.
func (f *Field) autoFlag() {
	for _, i := range slices.Sorted(maps.Keys(f.unknown)) {
		cell := &f.cells[i]
		if cell.state != Unknown || !f.isObviousMine(cell) {
			continue
		}
		if f.flagCount >= f.params.MineCount {
			return
		}
		f.update(cell, Flagged)
		if f.state != Active {
			return
		}
	}
}

func (f *Field) isObviousMine(cell *Cell) bool {
	sum := 0
	for near := range cell.AdjacentCells(f) {
		n := near.NearMineCount()
		if n < 0 {
			return false
		}
		sum += n
	}
	return sum > 0
}

// update performs one transition: it appends the change record, keeps the
// flag count and the unknown set in step and re-checks completion.
//
// panics [AssertionError] on a transition the state machine does not allow
func (f *Field) update(cell *Cell, state CellState) {
	old := cell.state
	if old == state {
		panic(AssertionError{fmt.Sprintf("cell %s is already %s", cell.Pos, state)})
	}

	i := f.index(cell)

	switch state.Kind() {
	case KindFlagged:
		if old != Unknown {
			panic(AssertionError{fmt.Sprintf("cannot flag %s cell %s", old, cell.Pos)})
		}
		delete(f.unknown, i)
		f.flagCount++

	case KindQuestionMark:
		if !old.IsFlagged() {
			panic(AssertionError{fmt.Sprintf("cannot question-mark %s cell %s", old, cell.Pos)})
		}
		f.unknown[i] = struct{}{}
		f.flagCount--

	case KindUnknown:
		if old.IsFlagged() {
			f.unknown[i] = struct{}{}
			f.flagCount--
		} else if !old.IsQuestionMark() {
			panic(AssertionError{fmt.Sprintf("cannot reset %s cell %s", old, cell.Pos)})
		}

	default:
		if !old.IsUnknown() {
			panic(AssertionError{fmt.Sprintf("cannot reveal %s cell %s", old, cell.Pos)})
		}
		delete(f.unknown, i)
	}

	if f.tracker != nil {
		f.tracker.Append(Change{Pos: cell.Pos, Old: old, New: state})
	}
	cell.state = state

	unknown := len(f.unknown)
	if (unknown == 0 && f.flagCount == f.params.MineCount) ||
		f.params.MineCount-f.flagCount == unknown {
		f.state = Completed
	}
}

// Field implements [fmt.Stringer]. Mines that are still hidden are not
// shown.
func (f *Field) String() string {
	var b strings.Builder
	for i := range f.cells {
		b.WriteString(f.cells[i].state.Symbol())
		if (i+1)%f.width == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// MineLayout dumps the real mine positions, '*' for a mine and '.' for a
// safe cell.
func (f *Field) MineLayout() string {
	var b strings.Builder
	for i := range f.cells {
		if f.cells[i].containsMine {
			b.WriteByte('*')
		} else {
			b.WriteByte('.')
		}
		if (i+1)%f.width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

package mines

import (
	"fmt"
	"iter"
)

type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

func (d Direction) delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	default:
		return 0, -1
	}
}

/*
Selection is the cursor over a field: either a single cell or a rectangle
spanned by a fixed anchor and the current (moving) corner. After the round
ends the selection is cleared and navigation does nothing.
*/
type Selection struct {
	field   *Field
	current Pos
	anchor  Pos
	multi   bool
	active  bool
}

// NewSelection selects the top-left cell.
func NewSelection(f *Field) *Selection {
	return &Selection{field: f, active: true}
}

// Current returns the moving corner (or the only selected cell).
func (s *Selection) Current() (Pos, bool) {
	return s.current, s.active
}

// Anchor returns the fixed corner of a rectangle selection.
func (s *Selection) Anchor() (Pos, bool) {
	return s.anchor, s.active && s.multi
}

func (s *Selection) IsMulti() bool {
	return s.active && s.multi
}

// Move selects the single cell p, dropping any rectangle.
//
// panics [AssertionError] if p is outside the field
func (s *Selection) Move(p Pos) {
	s.field.Cell(p)
	s.current = p
	s.multi = false
	s.active = true
}

// TryMove selects (row, column) if it lies inside the field.
func (s *Selection) TryMove(row, column int) bool {
	p := Pos{Row: row, Column: column}
	if !s.field.InBounds(p) {
		return false
	}
	s.Move(p)
	return true
}

// Extend moves the rectangle's moving corner to p. The anchor is the
// previous anchor or, for a single-cell selection, the selected cell.
// Extending back onto the anchor leaves a single-cell selection.
func (s *Selection) Extend(p Pos) {
	s.field.Cell(p)
	anchor := s.current
	if s.multi {
		anchor = s.anchor
	}
	s.multi = p != anchor
	s.anchor = anchor
	s.current = p
	s.active = true
}

// Collapse drops the rectangle and keeps the current corner selected.
func (s *Selection) Collapse() {
	s.multi = false
}

// Clear removes the selection entirely.
func (s *Selection) Clear() {
	s.active = false
	s.multi = false
}

// Bounds returns the top-left and bottom-right corners of the selection.
func (s *Selection) Bounds() (topLeft, bottomRight Pos) {
	if !s.multi {
		return s.current, s.current
	}
	topLeft = Pos{Row: min(s.anchor.Row, s.current.Row), Column: min(s.anchor.Column, s.current.Column)}
	bottomRight = Pos{Row: max(s.anchor.Row, s.current.Row), Column: max(s.anchor.Column, s.current.Column)}
	return
}

func (s *Selection) Contains(p Pos) bool {
	if !s.active {
		return false
	}
	tl, br := s.Bounds()
	return p.Row >= tl.Row && p.Row <= br.Row &&
		p.Column >= tl.Column && p.Column <= br.Column
}

// Cells returns the selected positions in row-major order.
func (s *Selection) Cells() []Pos {
	if !s.active {
		return nil
	}
	tl, br := s.Bounds()
	cells := make([]Pos, 0, (br.Row-tl.Row+1)*(br.Column-tl.Column+1))
	for i := tl.Row; i <= br.Row; i++ {
		for j := tl.Column; j <= br.Column; j++ {
			cells = append(cells, Pos{Row: i, Column: j})
		}
	}
	return cells
}

// Step handles a plain arrow key. With a rectangle selected, Left and Right
// collapse to the rectangle's left or right column on the current row.
func (s *Selection) Step(d Direction) {
	if !s.active {
		return
	}
	row, column := s.current.Row, s.current.Column
	if s.multi {
		switch d {
		case Left:
			s.Move(Pos{Row: row, Column: min(s.anchor.Column, column)})
			return
		case Right:
			s.Move(Pos{Row: row, Column: max(s.anchor.Column, column)})
			return
		}
	}
	dr, dc := d.delta()
	s.TryMove(row+dr, column+dc)
}

// Expand grows or shrinks the rectangle by one cell in direction d.
func (s *Selection) Expand(d Direction) {
	if !s.active {
		return
	}
	dr, dc := d.delta()
	p := Pos{Row: s.current.Row + dr, Column: s.current.Column + dc}
	if s.field.InBounds(p) {
		s.Extend(p)
	}
}

// Home selects the first cell of the current row, or of the field when top
// is set. End is the mirror image.
func (s *Selection) Home(top bool) {
	if !s.active {
		return
	}
	row := s.current.Row
	if top {
		row = 0
	}
	s.Move(Pos{Row: row, Column: 0})
}

func (s *Selection) End(bottom bool) {
	if !s.active {
		return
	}
	row := s.current.Row
	if bottom {
		row = s.field.height - 1
	}
	s.Move(Pos{Row: row, Column: s.field.width - 1})
}

/*
Jump moves the cursor along direction d looking for unknown cells. From an
unknown cell next to another unknown cell it lands on the last cell of that
unknown run; otherwise it lands on the first unknown cell ahead. With
nothing found it stops at the edge of the field.
*/
func (s *Selection) Jump(d Direction) {
	if !s.active {
		return
	}
	f := s.field
	cell := f.Cell(s.current)

	var cells iter.Seq[*Cell]
	switch d {
	case Up:
		cells = cell.CellsUp(f)
	case Right:
		cells = cell.CellsRight(f)
	case Down:
		cells = cell.CellsDown(f)
	default:
		cells = cell.CellsLeft(f)
	}

	target := findNearUnknownCell(cells, cell.IsUnknown())

	p := s.current
	switch {
	case target != nil && (d == Up || d == Down):
		p.Row = target.Row
	case target != nil:
		p.Column = target.Column
	case d == Up:
		p.Row = 0
	case d == Down:
		p.Row = f.height - 1
	case d == Right:
		p.Column = f.width - 1
	default:
		p.Column = 0
	}
	s.Move(p)
}

func findNearUnknownCell(cells iter.Seq[*Cell], fromUnknown bool) *Cell {
	var (
		last    *Cell
		started bool
		inRun   bool
	)
	for c := range cells {
		if !started {
			started = true
			inRun = fromUnknown && c.IsUnknown()
		}
		if inRun {
			if !c.IsUnknown() {
				break
			}
			last = c
			continue
		}
		if c.IsUnknown() {
			return c
		}
	}
	return last
}

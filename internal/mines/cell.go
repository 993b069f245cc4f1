package mines

import (
	"fmt"
	"iter"
)

type Pos struct {
	Row, Column int
}

// Pos implements [fmt.Stringer]
func (p Pos) String() string {
	return fmt.Sprintf("[%d, %d]", p.Row, p.Column)
}

// Cell is a value record stored in the field's arena. Only the field
// mutates it.
type Cell struct {
	Pos
	containsMine bool
	state        CellState
}

func (c *Cell) ContainsMine() bool { return c.containsMine }

func (c *Cell) State() CellState { return c.state }

func (c *Cell) IsUnknown() bool { return c.state.IsUnknown() }

func (c *Cell) IsQuestionMark() bool { return c.state.IsQuestionMark() }

func (c *Cell) IsFlagged() bool { return c.state.IsFlagged() }

func (c *Cell) IsEmpty() bool { return c.state.IsEmpty() }

func (c *Cell) NearMineCount() int { return c.state.NearMineCount() }

// Cell implements [fmt.Stringer]
func (c *Cell) String() string {
	return fmt.Sprintf("%s %s ContainsMine = %t", c.Pos, c.state, c.containsMine)
}

// AdjacentCells yields the up to 8 surrounding cells in the order NW, N, NE,
// E, SE, S, SW, W, skipping positions outside the grid.
func (c *Cell) AdjacentCells(f *Field) iter.Seq[*Cell] {
	i, j := c.Row, c.Column
	return func(yield func(*Cell) bool) {
		lastRow, lastCol := f.height-1, f.width-1
		if i > 0 {
			if j > 0 && !yield(f.at(i-1, j-1)) {
				return
			}
			if !yield(f.at(i-1, j)) {
				return
			}
			if j < lastCol && !yield(f.at(i-1, j+1)) {
				return
			}
		}
		if j < lastCol {
			if !yield(f.at(i, j+1)) {
				return
			}
			if i < lastRow && !yield(f.at(i+1, j+1)) {
				return
			}
		}
		if i < lastRow {
			if !yield(f.at(i+1, j)) {
				return
			}
			if j > 0 && !yield(f.at(i+1, j-1)) {
				return
			}
		}
		if j > 0 {
			yield(f.at(i, j-1))
		}
	}
}

// CellsLeft yields the cells of the same row from the one next to c to the
// left edge.
func (c *Cell) CellsLeft(f *Field) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for j := c.Column - 1; j >= 0; j-- {
			if !yield(f.at(c.Row, j)) {
				return
			}
		}
	}
}

func (c *Cell) CellsRight(f *Field) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for j := c.Column + 1; j < f.width; j++ {
			if !yield(f.at(c.Row, j)) {
				return
			}
		}
	}
}

func (c *Cell) CellsUp(f *Field) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := c.Row - 1; i >= 0; i-- {
			if !yield(f.at(i, c.Column)) {
				return
			}
		}
	}
}

func (c *Cell) CellsDown(f *Field) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := c.Row + 1; i < f.height; i++ {
			if !yield(f.at(i, c.Column)) {
				return
			}
		}
	}
}

// countAdjacentMines is the true near-mine count, independent of what the
// player knows.
func (c *Cell) countAdjacentMines(f *Field) int {
	count := 0
	for adjacent := range c.AdjacentCells(f) {
		if adjacent.containsMine {
			count++
		}
	}
	return count
}

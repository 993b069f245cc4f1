package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionStep(t *testing.T) {
	f, _ := newTestField(t, 3, 2, Pos{1, 1})
	s := NewSelection(f)

	s.Step(Left)
	s.Step(Up)
	p, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, Pos{0, 0}, p)

	s.Step(Right)
	s.Step(Right)
	s.Step(Right)
	s.Step(Down)
	p, _ = s.Current()
	assert.Equal(t, Pos{1, 2}, p)
	assert.Equal(t, []Pos{{1, 2}}, s.Cells())
}

func TestSelectionRectangle(t *testing.T) {
	f, _ := newTestField(t, 5, 5, Pos{4, 4})
	s := NewSelection(f)
	s.Move(Pos{1, 3})

	s.Expand(Left)
	s.Expand(Left)
	s.Expand(Down)

	require.True(t, s.IsMulti())
	anchor, _ := s.Anchor()
	assert.Equal(t, Pos{1, 3}, anchor)
	assert.Equal(t, []Pos{
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 2}, {2, 3},
	}, s.Cells())
	assert.True(t, s.Contains(Pos{2, 2}))
	assert.False(t, s.Contains(Pos{0, 2}))

	tl, br := s.Bounds()
	assert.Equal(t, Pos{1, 1}, tl)
	assert.Equal(t, Pos{2, 3}, br)
}

func TestSelectionExtendBackToAnchor(t *testing.T) {
	f, _ := newTestField(t, 3, 3, Pos{2, 2})
	s := NewSelection(f)

	s.Expand(Right)
	require.True(t, s.IsMulti())
	s.Expand(Left)

	assert.False(t, s.IsMulti())
	assert.Equal(t, []Pos{{0, 0}}, s.Cells())
}

func TestSelectionStepCollapsesRectangle(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Pos
	}{
		{"left", Left, Pos{3, 1}},
		{"right", Right, Pos{3, 3}},
		{"up", Up, Pos{2, 3}},
		{"down", Down, Pos{4, 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, _ := newTestField(t, 5, 5, Pos{0, 0})
			s := NewSelection(f)
			s.Move(Pos{1, 1})
			s.Extend(Pos{3, 3})

			s.Step(test.dir)

			assert.False(t, s.IsMulti())
			p, _ := s.Current()
			assert.Equal(t, test.want, p)
		})
	}
}

func TestSelectionCollapseAndClear(t *testing.T) {
	f, _ := newTestField(t, 3, 3, Pos{2, 2})
	s := NewSelection(f)
	s.Extend(Pos{1, 1})

	s.Collapse()
	assert.Equal(t, []Pos{{1, 1}}, s.Cells())

	s.Clear()
	assert.Nil(t, s.Cells())
	assert.False(t, s.Contains(Pos{1, 1}))
	s.Step(Right)
	s.Jump(Left)
	s.Home(true)
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestSelectionHomeEnd(t *testing.T) {
	f, _ := newTestField(t, 4, 3, Pos{0, 0})
	s := NewSelection(f)
	s.Move(Pos{1, 2})

	s.Home(false)
	p, _ := s.Current()
	assert.Equal(t, Pos{1, 0}, p)

	s.End(false)
	p, _ = s.Current()
	assert.Equal(t, Pos{1, 3}, p)

	s.Home(true)
	p, _ = s.Current()
	assert.Equal(t, Pos{0, 0}, p)

	s.End(true)
	p, _ = s.Current()
	assert.Equal(t, Pos{2, 3}, p)
}

func TestSelectionJump(t *testing.T) {
	// . . 1 # # # # #
	f, _ := newTestField(t, 8, 1, Pos{0, 3}, Pos{0, 7})
	require.Equal(t, Active, f.ApplyBatch([]Pos{{0, 0}}, false))
	require.Equal(t, ". . 1 # # # # #\n", f.String())

	s := NewSelection(f)
	steps := []struct {
		dir  Direction
		want Pos
	}{
		{Right, Pos{0, 3}}, // first unknown ahead
		{Right, Pos{0, 7}}, // end of the unknown run
		{Right, Pos{0, 7}}, // edge
		{Left, Pos{0, 3}},
		{Left, Pos{0, 0}}, // nothing unknown to the left
		{Down, Pos{0, 0}},
	}
	for i, step := range steps {
		s.Jump(step.dir)
		p, _ := s.Current()
		assert.Equal(t, step.want, p, "step %d: %s", i, step.dir)
	}
}

func TestSelectionJumpVertical(t *testing.T) {
	// rows: # # 1 . 1 *
	f, _ := newTestField(t, 1, 6, Pos{1, 0}, Pos{5, 0})
	require.Equal(t, Active, f.ApplyBatch([]Pos{{3, 0}}, false))
	require.Equal(t, Flagged, f.Cell(Pos{5, 0}).State())

	s := NewSelection(f)
	steps := []struct {
		dir  Direction
		want Pos
	}{
		{Down, Pos{1, 0}},
		{Down, Pos{5, 0}},
		{Up, Pos{1, 0}},
		{Up, Pos{0, 0}},
	}
	for i, step := range steps {
		s.Jump(step.dir)
		p, _ := s.Current()
		assert.Equal(t, step.want, p, "step %d: %s", i, step.dir)
	}
}

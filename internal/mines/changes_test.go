package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeReader(t *testing.T) {
	tracker := NewChangeTracker()
	r := NewChangeReader(tracker)

	assert.False(t, r.Pending())
	assert.Nil(t, r.Next())

	a := Change{Pos: Pos{0, 0}, Old: Unknown, New: Flagged}
	b := Change{Pos: Pos{0, 1}, Old: Unknown, New: Revealed(3)}
	c := Change{Pos: Pos{0, 0}, Old: Flagged, New: Unknown}

	tracker.Append(a)
	tracker.Append(b)
	assert.True(t, r.Pending())
	assert.Equal(t, []Change{a, b}, r.Next())
	assert.False(t, r.Pending())

	tracker.Append(c)
	r.Skip()
	assert.False(t, r.Pending())
	assert.Nil(t, r.Next())

	assert.Equal(t, []Change{a, b, c}, tracker.Changes())
	assert.Equal(t, []Change{c}, tracker.Since(2))
}

func TestChangeTrackerSince(t *testing.T) {
	tracker := NewChangeTracker()
	a := Change{Pos: Pos{0, 0}, Old: Unknown, New: Flagged}
	b := Change{Pos: Pos{0, 1}, Old: Unknown, New: Empty}
	tracker.Append(a)
	tracker.Append(b)

	tests := []struct {
		name string
		n    int
		want []Change
	}{
		{"negative", -1, []Change{a, b}},
		{"zero", 0, []Change{a, b}},
		{"middle", 1, []Change{b}},
		{"end", 2, nil},
		{"past end", 5, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, tracker.Since(test.n))
		})
	}
}

func TestChangeTrackerSliceIsCapped(t *testing.T) {
	tracker := NewChangeTracker()
	tracker.Append(Change{Pos: Pos{0, 0}, Old: Unknown, New: Empty})

	changes := tracker.Changes()
	_ = append(changes, Change{Pos: Pos{9, 9}})
	tracker.Append(Change{Pos: Pos{0, 1}, Old: Unknown, New: Empty})

	assert.Equal(t, Pos{0, 1}, tracker.Changes()[1].Pos)
}

func TestChangeString(t *testing.T) {
	c := Change{Pos: Pos{2, 5}, Old: Unknown, New: Revealed(4)}
	assert.Equal(t, "[2, 5] Unknown -> Revealed(4)", c.String())
}

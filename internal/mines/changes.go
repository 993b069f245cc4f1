package mines

import "fmt"

// Change records a single cell transition.
type Change struct {
	Pos
	Old, New CellState
}

// Change implements [fmt.Stringer]
func (c Change) String() string {
	return fmt.Sprintf("%s %s -> %s", c.Pos, c.Old, c.New)
}

// ChangeTracker is the append-only log of transitions for one field.
type ChangeTracker struct {
	changes []Change
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{}
}

func (t *ChangeTracker) Append(c Change) {
	t.changes = append(t.changes, c)
}

func (t *ChangeTracker) Len() int {
	return len(t.changes)
}

// Changes returns the whole log. The returned slice must not be modified.
func (t *ChangeTracker) Changes() []Change {
	return t.changes[:len(t.changes):len(t.changes)]
}

// Since returns the records appended after the first n. A negative n is
// treated as 0.
func (t *ChangeTracker) Since(n int) []Change {
	n = max(n, 0)
	if n >= len(t.changes) {
		return nil
	}
	return t.changes[n:len(t.changes):len(t.changes)]
}

// ChangeReader remembers how much of a tracker has been consumed.
type ChangeReader struct {
	tracker *ChangeTracker
	read    int
}

func NewChangeReader(t *ChangeTracker) *ChangeReader {
	return &ChangeReader{tracker: t}
}

// Next returns the records appended since the previous call.
func (r *ChangeReader) Next() []Change {
	changes := r.tracker.Since(r.read)
	r.read = r.tracker.Len()
	return changes
}

// Pending reports whether unread records exist.
func (r *ChangeReader) Pending() bool {
	return r.read < r.tracker.Len()
}

// Skip marks everything as read, e.g. after a full redraw.
func (r *ChangeReader) Skip() {
	r.read = r.tracker.Len()
}

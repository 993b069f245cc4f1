package mines

import "errors"

var (
	ErrInvalidDimensions = errors.New("width and height must be at least 1")
	ErrInvalidMineCount  = errors.New("mine count must be between 1 and the number of cells")
)

// AssertionError reports a broken internal invariant or a violated
// precondition. It is raised with panic, never returned.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

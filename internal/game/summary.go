package game

import (
	"fmt"
	"time"

	"github.com/vancomm/minesweeper-term/internal/mines"
)

type Result uint8

const (
	Won Result = iota
	Lost
	Canceled
)

func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// ExitCode is the process status reported for a round that ended with r.
func (r Result) ExitCode() int {
	return int(r)
}

type Summary struct {
	Result  Result
	Elapsed time.Duration
	Params  mines.Params
}

// ElapsedSeconds formats the elapsed time with one decimal, e.g. "12.3".
func (s Summary) ElapsedSeconds() string {
	return fmt.Sprintf("%.1f", s.Elapsed.Seconds())
}

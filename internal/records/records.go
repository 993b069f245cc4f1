package records

import (
	"context"
	"fmt"
	"time"

	"github.com/vancomm/minesweeper-term/internal/game"
	"github.com/vancomm/minesweeper-term/internal/repository"
)

// Store keeps finished rounds and answers leaderboard queries.
type Store interface {
	Save(ctx context.Context, s game.Summary) error
	Best(ctx context.Context, filter repository.HighscoreFilter, limit int) ([]repository.Highscore, error)
	Close()
}

// Nop is used when records are disabled or the database is unreachable.
type Nop struct{}

func (Nop) Save(context.Context, game.Summary) error { return nil }

func (Nop) Best(context.Context, repository.HighscoreFilter, int) ([]repository.Highscore, error) {
	return nil, nil
}

func (Nop) Close() {}

func NewRecordParams(playerId *int, s game.Summary) repository.CreateGameRecordParams {
	return repository.CreateGameRecordParams{
		PlayerId:     playerId,
		Width:        s.Params.Width,
		Height:       s.Params.Height,
		MineCount:    s.Params.MineCount,
		QuestionMark: s.Params.UseQuestionMark,
		Result:       s.Result.String(),
		ElapsedMs:    s.Elapsed.Milliseconds(),
	}
}

const anonymous = "anonymous"

func username(h repository.Highscore) string {
	if h.Username == nil || *h.Username == "" {
		return anonymous
	}
	return *h.Username
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1f", d.Seconds())
}

// BestLines formats the leaderboard shown after a win.
func BestLines(scores []repository.Highscore) []string {
	if len(scores) == 0 {
		return nil
	}
	lines := make([]string, 0, len(scores)+1)
	lines = append(lines, "Best times:")
	for i, h := range scores {
		lines = append(lines, fmt.Sprintf("%2d. %-16s %6s s", i+1, username(h), seconds(h.Elapsed())))
	}
	return lines
}

// Table formats scores of any field size for the records command.
func Table(scores []repository.Highscore) []string {
	lines := make([]string, 0, len(scores)+1)
	lines = append(lines, fmt.Sprintf("%-4s %-16s %-12s %8s  %s", "#", "player", "field", "time", "finished"))
	for i, h := range scores {
		field := fmt.Sprintf("%dx%d(%d)", h.Width, h.Height, h.MineCount)
		if h.QuestionMark {
			field += "?"
		}
		lines = append(lines, fmt.Sprintf(
			"%-4d %-16s %-12s %6s s  %s",
			i+1, username(h), field, seconds(h.Elapsed()), h.FinishedAt.Format(time.DateTime),
		))
	}
	return lines
}

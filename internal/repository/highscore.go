package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

type Highscore struct {
	GameRecordId int       `json:"game_record_id" db:"game_record_id"`
	Username     *string   `json:"username" db:"username"`
	Width        int       `json:"width" db:"width"`
	Height       int       `json:"height" db:"height"`
	MineCount    int       `json:"mine_count" db:"mine_count"`
	QuestionMark bool      `json:"question_mark" db:"question_mark"`
	ElapsedMs    int64     `json:"elapsed_ms" db:"elapsed_ms"`
	FinishedAt   time.Time `json:"finished_at" db:"finished_at"`
}

func (h Highscore) Elapsed() time.Duration {
	return time.Duration(h.ElapsedMs) * time.Millisecond
}

type HighscoreFilter struct {
	Username *string
	Params   *mines.Params
}

func (f HighscoreFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Params != nil {
		clauses = append(
			clauses,
			"width = @width",
			"height = @height",
			"mine_count = @mineCount",
			"question_mark = @questionMark",
		)
		args["width"] = f.Params.Width
		args["height"] = f.Params.Height
		args["mineCount"] = f.Params.MineCount
		args["questionMark"] = f.Params.UseQuestionMark
	}
	return strings.Join(clauses, " AND "), args
}

// GetHighscores lists won rounds, fastest first. A limit of 0 or less
// returns every match.
func (q Queries) GetHighscores(
	ctx context.Context, filter HighscoreFilter, limit int,
) ([]Highscore, error) {
	query := `
	SELECT
		game_record_id,
		username,
		width,
		height,
		mine_count,
		question_mark,
		elapsed_ms,
		finished_at
	FROM game_record
		LEFT OUTER JOIN player using (player_id)
	WHERE
		result = 'won'
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY elapsed_ms, finished_at"
	if limit > 0 {
		query += " LIMIT @limit"
		args["limit"] = limit
	}

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Highscore])
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type GameRecord struct {
	GameRecordId int                `db:"game_record_id"`
	PlayerId     *int               `db:"player_id"`
	Width        int                `db:"width"`
	Height       int                `db:"height"`
	MineCount    int                `db:"mine_count"`
	QuestionMark bool               `db:"question_mark"`
	Result       string             `db:"result"`
	ElapsedMs    int64              `db:"elapsed_ms"`
	FinishedAt   pgtype.Timestamptz `db:"finished_at"`
}

type CreateGameRecordParams struct {
	PlayerId     *int
	Width        int
	Height       int
	MineCount    int
	QuestionMark bool
	Result       string
	ElapsedMs    int64
}

func (q Queries) CreateGameRecord(
	ctx context.Context, params CreateGameRecordParams,
) (*GameRecord, error) {
	args := pgx.NamedArgs{
		"player_id":     params.PlayerId,
		"width":         params.Width,
		"height":        params.Height,
		"mine_count":    params.MineCount,
		"question_mark": params.QuestionMark,
		"result":        params.Result,
		"elapsed_ms":    params.ElapsedMs,
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_record (
			player_id, width, height, mine_count, question_mark, result, elapsed_ms
		)
		VALUES (
			@player_id, @width, @height, @mine_count, @question_mark, @result, @elapsed_ms
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameRecord],
	)
}

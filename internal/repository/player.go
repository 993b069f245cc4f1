package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type Player struct {
	PlayerId  int                `db:"player_id"`
	Username  string             `db:"username"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
}

func (q *Queries) CreatePlayer(ctx context.Context, username string) (*Player, error) {
	rows, _ := q.db.Query(
		ctx,
		"INSERT INTO player (username) VALUES ($1) RETURNING *",
		username,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Player])
}

func (q *Queries) FetchPlayer(ctx context.Context, username string) (*Player, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM player WHERE username = $1", username,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Player])
}

// EnsurePlayer returns the player with the given name, creating it on first
// use.
func (q *Queries) EnsurePlayer(ctx context.Context, username string) (*Player, error) {
	player, err := q.CreatePlayer(ctx, username)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return q.FetchPlayer(ctx, username)
	}
	return player, err
}

package records

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vancomm/minesweeper-term/internal/database"
	"github.com/vancomm/minesweeper-term/internal/game"
	"github.com/vancomm/minesweeper-term/internal/repository"
)

type Postgres struct {
	db      *pgxpool.Pool
	queries *repository.Queries

	player   string
	playerId *int
}

// Open migrates the database at url and connects to it. Rounds are saved
// under player, or without a player if it is empty.
func Open(ctx context.Context, url string, player string) (*Postgres, error) {
	db, migrator, err := database.ConnectAndMigrate(ctx, url)
	if err != nil {
		return nil, err
	}
	migrator.Close()
	return &Postgres{
		db:      db,
		queries: repository.New(db),
		player:  player,
	}, nil
}

func (pg *Postgres) Close() {
	pg.db.Close()
}

func (pg *Postgres) Save(ctx context.Context, s game.Summary) error {
	if pg.player != "" && pg.playerId == nil {
		player, err := pg.queries.EnsurePlayer(ctx, pg.player)
		if err != nil {
			return fmt.Errorf("unable to register player %s: %w", pg.player, err)
		}
		pg.playerId = &player.PlayerId
	}
	if _, err := pg.queries.CreateGameRecord(ctx, NewRecordParams(pg.playerId, s)); err != nil {
		return fmt.Errorf("unable to save record: %w", err)
	}
	return nil
}

func (pg *Postgres) Best(
	ctx context.Context, filter repository.HighscoreFilter, limit int,
) ([]repository.Highscore, error) {
	return pg.queries.GetHighscores(ctx, filter, limit)
}

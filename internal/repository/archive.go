package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ArchivedGame - the durable record kept for a finished game after its live
// state leaves redis.
type ArchivedGame struct {
	ID         string    `json:"id"`
	Winner     string    `json:"winner"`
	Score      int       `json:"score"`
	BlackCount int       `json:"black_count"`
	WhiteCount int       `json:"white_count"`
	FinishedAt time.Time `json:"finished_at"`
}

type ArchiveRepository interface {
	Save(ctx context.Context, game *ArchivedGame) error
	ListRecent(ctx context.Context, limit int) ([]*ArchivedGame, error)
}

type dbArchive struct {
	conn *sql.DB
}

func NewArchiveRepository(conn *sql.DB) ArchiveRepository {
	return &dbArchive{
		conn: conn,
	}
}

func (that *dbArchive) Save(ctx context.Context, game *ArchivedGame) error {
	query := `INSERT OR REPLACE INTO games (id, winner, score, black_count, white_count, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		game.ID, game.Winner, game.Score, game.BlackCount, game.WhiteCount, game.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to archive game: %w", err)
	}

	return nil
}

func (that *dbArchive) ListRecent(ctx context.Context, limit int) ([]*ArchivedGame, error) {
	query := `SELECT id, winner, score, black_count, white_count, finished_at
		FROM games ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived games: %w", err)
	}
	defer rows.Close()

	var games []*ArchivedGame
	for rows.Next() {
		var game ArchivedGame
		if err = rows.Scan(&game.ID, &game.Winner, &game.Score, &game.BlackCount, &game.WhiteCount, &game.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan archived game: %w", err)
		}
		games = append(games, &game)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read archived games: %w", err)
	}

	return games, nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

type SQLiteStorage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &SQLiteStorage{Connection: conn}, nil
}

// Init - creates the finished-game archive table.
func (that *SQLiteStorage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		winner TEXT NOT NULL,
		score INTEGER NOT NULL,
		black_count INTEGER NOT NULL,
		white_count INTEGER NOT NULL,
		finished_at TIMESTAMP NOT NULL
	)`

	_, err := that.Connection.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *SQLiteStorage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/marcus8448/hammer/internal/entity"
	"github.com/marcus8448/hammer/internal/pkg"
	"github.com/marcus8448/hammer/internal/repository"
	"github.com/marcus8448/hammer/internal/reversi"
)

type GameService interface {
	CreateGame(ctx context.Context, player *entity.Player, gameType string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error
	ArchiveGame(ctx context.Context, game *entity.Game) error

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	GetWaitingPublicGame(ctx context.Context) (*entity.Game, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	GetWaitingPublicGame(ctx context.Context) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type archiveRepo interface {
	Save(ctx context.Context, game *repository.ArchivedGame) error
}

type gameService struct {
	gameRepo    gameRepo
	archiveRepo archiveRepo

	clockSeconds float64
}

func NewGameService(gameRepo gameRepo, archiveRepo archiveRepo, clockSeconds float64) GameService {
	return &gameService{
		gameRepo:     gameRepo,
		archiveRepo:  archiveRepo,
		clockSeconds: clockSeconds,
	}
}

// CreateGame - creates a game owned by player. The creator takes black and
// moves first; the joining side takes white.
func (that *gameService) CreateGame(ctx context.Context, player *entity.Player, gameType string) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID, gameType)
	game.BlackTime = that.clockSeconds
	game.WhiteTime = that.clockSeconds

	player.GameID = gameID
	player.Color = reversi.Black

	game.Players = []*entity.Player{player}
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetWaitingPublicGame(ctx context.Context) (*entity.Game, error) {
	game, err := that.gameRepo.GetWaitingPublicGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve waiting public game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *gameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// ArchiveGame - writes the durable record for a finished game.
func (that *gameService) ArchiveGame(ctx context.Context, game *entity.Game) error {
	blacks, whites := 0, 0
	for y := 0; y < reversi.Size; y++ {
		for x := 0; x < reversi.Size; x++ {
			switch game.Board[y][x] {
			case reversi.Black:
				blacks++
			case reversi.White:
				whites++
			}
		}
	}

	record := &repository.ArchivedGame{
		ID:         game.ID,
		Winner:     game.Winner,
		Score:      game.Score(),
		BlackCount: blacks,
		WhiteCount: whites,
		FinishedAt: time.Now().UTC(),
	}

	if err := that.archiveRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to archive game: %w", err)
	}

	return nil
}

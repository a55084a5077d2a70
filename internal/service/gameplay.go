package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marcus8448/hammer/internal/apperror"
	"github.com/marcus8448/hammer/internal/entity"
	"github.com/marcus8448/hammer/internal/reversi"
)

type GamePlayService interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID, gameType string) (*entity.Game, error)
	JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	JoinWaitingPublicGame(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, x, y int) (*entity.Game, error)
	GetGameState(ctx context.Context, playerID string) (*entity.Game, error)
	LeaveGame(ctx context.Context, playerID string) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
	}
}

func (that *gamePlayService) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.playerService.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	return player, nil
}

func (that *gamePlayService) GetOrCreateGame(ctx context.Context, playerID, gameType string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		game, err := that.gameService.GetGameByID(ctx, player.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to get game: %w", err)
		}

		return game, nil
	}

	game, err := that.createGame(ctx, player, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) createGame(ctx context.Context, player *entity.Player, gameType string) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, player, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if game.IsWithBot() {
		if err = that.addBotToGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to add bot to game: %w", err)
		}
	}

	return game, nil
}

// addBotToGame - seats a bot opponent, deals the colors at random and starts
// the game. When the bot draws black it moves immediately.
func (that *gamePlayService) addBotToGame(ctx context.Context, game *entity.Game) error {
	botPlayer := entity.NewBotPlayer(game.ID)

	playerColor, botColor := game.GetRandomColors()
	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.Color = playerColor
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			return fmt.Errorf("failed to update player: %w", err)
		}
	}

	botPlayer.Color = botColor
	if err := that.playerService.UpdatePlayer(ctx, botPlayer); err != nil {
		return fmt.Errorf("failed to update bot player: %w", err)
	}

	game.Players = append(game.Players, botPlayer)
	game.Status = entity.StatusOngoing
	game.MarkTurnStart(time.Now())

	if botColor == reversi.Black {
		if err := that.botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to make first turn: %w", err)
		}
		game.MarkTurnStart(time.Now())
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game with bot: %w", err)
	}

	return nil
}

func (that *gamePlayService) JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return that.joinGame(ctx, game, playerID)
}

func (that *gamePlayService) JoinWaitingPublicGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gameService.GetWaitingPublicGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get waiting public game: %w", err)
	}

	return that.joinGame(ctx, game, playerID)
}

func (that *gamePlayService) joinGame(ctx context.Context, game *entity.Game, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == game.ID {
		return game, nil
	}

	if len(game.Players) >= 2 {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameIsFull, game.ID)
	}

	player.GameID = game.ID
	player.Color = reversi.White
	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	game.Players = append(game.Players, player)
	game.Status = entity.StatusOngoing
	game.MarkTurnStart(time.Now())
	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// MakeTurn - applies one human move, charges the mover's clock by wall-clock
// turn duration, lets the bot reply for as long as it holds the turn, and
// persists or archives the result.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, x, y int) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	now := time.Now()
	if err = game.ApplyMove(player.Color, x, y); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	game.ChargeTime(player.Color, game.TurnElapsed(now))
	game.MarkTurnStart(now)

	// the bot keeps the turn for as long as the human has to pass
	for game.IsOngoing() {
		botPlayer := game.BotPlayer()
		if botPlayer == nil || game.Turn != botPlayer.Color {
			break
		}

		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
		game.MarkTurnStart(time.Now())
	}

	if game.IsFinished() {
		that.finishGame(ctx, game)
		return game, nil
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) GetGameState(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// LeaveGame - removes the leaving player's game; an abandoned game is not
// archived.
func (that *gamePlayService) LeaveGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.GetGameState(ctx, playerID)
	if err != nil {
		return nil, err
	}

	that.CleanupGame(ctx, game)

	return game, nil
}

// finishGame - archives the finished game and drops its live state.
func (that *gamePlayService) finishGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "finishGame", "gameID", game.ID)

	if err := that.gameService.ArchiveGame(ctx, game); err != nil {
		log.Error("failed to archive game", "error", err)
	}

	that.CleanupGame(ctx, game)
}

func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.GameID = ""
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to update player", "player", player.ID, "error", err)
		}
	}
}

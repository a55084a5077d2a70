package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/marcus8448/hammer/internal/bot"
	"github.com/marcus8448/hammer/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	strategy bot.Strategy
}

func NewBotService(strategy bot.Strategy) BotService {
	return &botService{
		strategy: strategy,
	}
}

// MakeTurn - plays one bot move: ask the strategy for candidates, pick one at
// random, submit it through the rules engine and charge the compute time to
// the bot's clock. The turn sequencer only hands the bot a turn when it has a
// legal move, so empty candidates mean the strategy is broken.
func (that *botService) MakeTurn(game *entity.Game) error {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	started := time.Now()
	candidates := that.strategy.CandidateMoves(game.Board, botPlayer.Color, game.TimeLeft(botPlayer.Color))
	if len(candidates.Moves) == 0 {
		return ErrNoAvailableMoves
	}

	chosenMove := candidates.Moves[rand.Intn(len(candidates.Moves))] //nolint: gosec // it's ok

	if err := game.ApplyMove(botPlayer.Color, chosenMove.X, chosenMove.Y); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	game.ChargeTime(botPlayer.Color, time.Since(started).Seconds())

	return nil
}

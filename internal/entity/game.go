package entity

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/marcus8448/hammer/internal/apperror"
	"github.com/marcus8448/hammer/internal/reversi"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	WinnerTie = "-"
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

// DefaultClockSeconds - the per-color time budget each side starts with.
const DefaultClockSeconds = 60

type Game struct {
	ID        string        `json:"id"`
	Board     reversi.Board `json:"board"`
	Turn      reversi.Cell  `json:"player_turn"`
	Winner    string        `json:"winner,omitempty"`
	Status    string        `json:"status"`
	Players   []*Player     `json:"players,omitempty"`
	Type      string        `json:"type,omitempty"`
	BlackTime float64       `json:"black_time"`
	WhiteTime float64       `json:"white_time"`

	// TurnStartedAt is the wall-clock start of the current turn in unix
	// milliseconds, used to charge think time to the mover's clock.
	TurnStartedAt int64 `json:"turn_started_at_ms,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:        id,
		Board:     reversi.NewBoard(),
		Turn:      reversi.Black,
		Status:    StatusWaiting,
		Type:      gameType,
		BlackTime: DefaultClockSeconds,
		WhiteTime: DefaultClockSeconds,
	}
}

// ApplyMove - validates and applies a placement for color at (x, y), then
// advances the turn. Passes are resolved here: if the opponent has no legal
// reply the turn stays with the mover, and when neither side can move the
// game finishes with the winner decided by material count.
func (that *Game) ApplyMove(color reversi.Cell, x, y int) error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	}

	if that.Turn != color {
		return apperror.ErrNotYourTurn
	}

	if !reversi.Play(&that.Board, color, x, y) {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrIllegalMove, x, y)
	}

	that.advanceTurn(color)

	return nil
}

func (that *Game) advanceTurn(mover reversi.Cell) {
	opponent := reversi.NextPlayer(mover)

	switch {
	case len(reversi.LegalMoves(that.Board, opponent)) > 0:
		that.Turn = opponent
	case len(reversi.LegalMoves(that.Board, mover)) > 0:
		// opponent has to pass
		that.Turn = mover
	default:
		that.finish()
	}
}

func (that *Game) finish() {
	that.Status = StatusFinished
	that.Turn = reversi.Empty

	switch score := reversi.Evaluate(that.Board); {
	case score > 0:
		that.Winner = reversi.Black.String()
	case score < 0:
		that.Winner = reversi.White.String()
	default:
		that.Winner = WinnerTie
	}
}

// Score - the current material score, positive when black is ahead.
func (that *Game) Score() int {
	return reversi.Evaluate(that.Board)
}

// ChargeTime - subtracts elapsed seconds from a color's clock. Clocks are
// bookkeeping only: they may go negative and running out never ends the game.
func (that *Game) ChargeTime(color reversi.Cell, seconds float64) {
	if color == reversi.Black {
		that.BlackTime -= seconds
		return
	}

	that.WhiteTime -= seconds
}

// TimeLeft - the remaining clock for a color, in seconds.
func (that *Game) TimeLeft(color reversi.Cell) float64 {
	if color == reversi.Black {
		return that.BlackTime
	}

	return that.WhiteTime
}

// MarkTurnStart - records the wall-clock start of the current turn.
func (that *Game) MarkTurnStart(now time.Time) {
	that.TurnStartedAt = now.UnixMilli()
}

// TurnElapsed - seconds since the current turn started.
func (that *Game) TurnElapsed(now time.Time) float64 {
	if that.TurnStartedAt == 0 {
		return 0
	}

	return float64(now.UnixMilli()-that.TurnStartedAt) / 1000
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return nil
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// BotPlayer - returns the bot participant, or nil for human-only games.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

// PlayerByColor - returns the participant holding a color, or nil.
func (that *Game) PlayerByColor(color reversi.Cell) *Player {
	for _, player := range that.Players {
		if player.Color == color {
			return player
		}
	}

	return nil
}

// GetRandomColors - deals the two piece colors in random order.
func (that *Game) GetRandomColors() (reversi.Cell, reversi.Cell) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return reversi.Black, reversi.White
	}

	return reversi.White, reversi.Black
}

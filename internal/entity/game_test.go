package entity

import (
	"testing"
	"time"

	"github.com/marcus8448/hammer/internal/apperror"
	"github.com/marcus8448/hammer/internal/reversi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame("123", PrivateType)

	// Then: it starts at the standard position, black to move, waiting
	require.Equal(t, "123", game.ID)
	require.Equal(t, reversi.NewBoard(), game.Board)
	require.Equal(t, reversi.Black, game.Turn)
	require.Equal(t, StatusWaiting, game.Status)
	require.True(t, game.IsWaiting())

	// Then: both clocks hold the full budget and the score is even
	assert.InDelta(t, float64(DefaultClockSeconds), game.BlackTime, 0)
	assert.InDelta(t, float64(DefaultClockSeconds), game.WhiteTime, 0)
	assert.Zero(t, game.Score())
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("legal move passes the turn", func(t *testing.T) {
		// Given: an ongoing game
		game := NewGame("123", PrivateType)
		game.Status = StatusOngoing

		// When: black plays an opening move
		err := game.ApplyMove(reversi.Black, 2, 3)

		// Then: the move is applied and it is white's turn
		require.NoError(t, err)
		require.Equal(t, reversi.White, game.Turn)
		require.Equal(t, 3, game.Score())
	})

	t.Run("error when game is waiting", func(t *testing.T) {
		// Given: a game still waiting for an opponent
		game := NewGame("123", PrivateType)

		// When: black tries to move
		err := game.ApplyMove(reversi.Black, 2, 3)

		// Then: ErrGameIsNotStarted is returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
		require.Equal(t, reversi.NewBoard(), game.Board)
	})

	t.Run("error on playing out of turn", func(t *testing.T) {
		// Given: an ongoing game with black to move
		game := NewGame("123", PrivateType)
		game.Status = StatusOngoing

		// When: white tries to move first
		err := game.ApplyMove(reversi.White, 2, 4)

		// Then: ErrNotYourTurn is returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, reversi.NewBoard(), game.Board)
	})

	t.Run("error on a capture-less placement", func(t *testing.T) {
		// Given: an ongoing game
		game := NewGame("123", PrivateType)
		game.Status = StatusOngoing

		// When: black plays a cell that flips nothing
		err := game.ApplyMove(reversi.Black, 0, 0)

		// Then: ErrIllegalMove is returned, board and turn unchanged
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.Equal(t, reversi.NewBoard(), game.Board)
		require.Equal(t, reversi.Black, game.Turn)
	})

	t.Run("turn stays with the mover when the opponent must pass", func(t *testing.T) {
		// Given: a position where white's reply leaves black without a move
		game := NewGame("123", PrivateType)
		game.Status = StatusOngoing
		game.Turn = reversi.White

		var board reversi.Board
		board[0][0] = reversi.White
		board[0][1] = reversi.Black
		board[0][3] = reversi.Black
		board[0][4] = reversi.White
		board[7][6] = reversi.Black
		board[7][7] = reversi.White
		game.Board = board

		// When: white captures the black pieces in the top row
		err := game.ApplyMove(reversi.White, 2, 0)

		// Then: black has no legal reply, so white keeps the turn
		require.NoError(t, err)
		require.Equal(t, reversi.White, game.Turn)
		require.True(t, game.IsOngoing())
	})

	t.Run("game finishes when neither side can move", func(t *testing.T) {
		// Given: a position where white's move wipes out black entirely
		game := NewGame("123", PrivateType)
		game.Status = StatusOngoing
		game.Turn = reversi.White

		var board reversi.Board
		board[0][0] = reversi.White
		board[0][1] = reversi.Black
		game.Board = board

		// When: white captures the last black piece
		err := game.ApplyMove(reversi.White, 2, 0)

		// Then: the game is finished and white wins on material
		require.NoError(t, err)
		require.True(t, game.IsFinished())
		require.Equal(t, reversi.White.String(), game.Winner)
		require.Equal(t, reversi.Empty, game.Turn)
	})

	t.Run("error after the game finished", func(t *testing.T) {
		// Given: a finished game
		game := NewGame("123", PrivateType)
		game.Status = StatusFinished

		// When: black tries to move
		err := game.ApplyMove(reversi.Black, 2, 3)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_ChargeTime(t *testing.T) {
	// Given: a fresh game
	game := NewGame("123", PrivateType)

	// When: black is charged more than the full budget
	game.ChargeTime(reversi.Black, DefaultClockSeconds+5)

	// Then: the clock goes negative and nothing else happens
	assert.InDelta(t, -5.0, game.BlackTime, 1e-9)
	assert.InDelta(t, float64(DefaultClockSeconds), game.WhiteTime, 0)
	assert.False(t, game.IsFinished())

	// Then: TimeLeft reads back the charged clocks
	assert.InDelta(t, game.BlackTime, game.TimeLeft(reversi.Black), 0)
	assert.InDelta(t, game.WhiteTime, game.TimeLeft(reversi.White), 0)
}

func TestGame_TurnElapsed(t *testing.T) {
	game := NewGame("123", PrivateType)

	// Given: no turn has started yet
	assert.Zero(t, game.TurnElapsed(time.Now()))

	// When: a turn starts and 1500ms pass
	start := time.Now()
	game.MarkTurnStart(start)

	// Then: the elapsed time is reported in seconds
	assert.InDelta(t, 1.5, game.TurnElapsed(start.Add(1500*time.Millisecond)), 1e-3)
}

func TestGame_BotPlayer(t *testing.T) {
	// Given: a bot game with one human and one bot
	game := NewGame("123", WithBotType)
	human := &Player{ID: "abc", Color: reversi.Black, GameID: game.ID}
	bot := NewBotPlayer(game.ID)
	bot.Color = reversi.White
	game.Players = []*Player{human, bot}

	// Then: bot and color lookups find the right players
	require.Equal(t, bot, game.BotPlayer())
	require.Equal(t, human, game.PlayerByColor(reversi.Black))
	require.Equal(t, bot, game.PlayerByColor(reversi.White))
	require.True(t, bot.IsBot())
	require.False(t, human.IsBot())
}

func TestGame_GetRandomColors(t *testing.T) {
	game := NewGame("123", WithBotType)

	// Then: the deal always hands out both colors
	for i := 0; i < 20; i++ {
		first, second := game.GetRandomColors()
		require.NotEqual(t, first, second)
		require.Contains(t, []reversi.Cell{reversi.Black, reversi.White}, first)
	}
}

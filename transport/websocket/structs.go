package websocket

import (
	"encoding/json"

	"github.com/marcus8448/hammer/internal/entity"
	"github.com/marcus8448/hammer/internal/reversi"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload - the request/response body shared by all actions.
type Payload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *GameView      `json:"game,omitempty"`
	Move   *reversi.Move  `json:"move,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// GameView - the client-facing rendering of a game. The board is sent as 8
// row strings of '.', 'B' and 'W' so clients do not depend on the engine's
// cell encoding.
type GameView struct {
	ID         string         `json:"id"`
	Board      [8]string      `json:"board"`
	Turn       string         `json:"turn,omitempty"`
	Winner     string         `json:"winner,omitempty"`
	Status     string         `json:"status"`
	Type       string         `json:"type,omitempty"`
	Score      int            `json:"score"`
	LegalMoves []reversi.Move `json:"legal_moves,omitempty"`
	BlackTime  float64        `json:"black_time"`
	WhiteTime  float64        `json:"white_time"`
}

func newGameView(game *entity.Game) *GameView {
	view := &GameView{
		ID:        game.ID,
		Status:    game.Status,
		Type:      game.Type,
		Winner:    game.Winner,
		Score:     game.Score(),
		BlackTime: game.BlackTime,
		WhiteTime: game.WhiteTime,
	}

	if game.Turn != reversi.Empty {
		view.Turn = game.Turn.String()
		view.LegalMoves = reversi.LegalMoves(game.Board, game.Turn)
	}

	for y := 0; y < reversi.Size; y++ {
		row := make([]byte, reversi.Size)
		for x := 0; x < reversi.Size; x++ {
			switch game.Board[y][x] {
			case reversi.Black:
				row[x] = 'B'
			case reversi.White:
				row[x] = 'W'
			default:
				row[x] = '.'
			}
		}
		view.Board[y] = string(row)
	}

	return view
}

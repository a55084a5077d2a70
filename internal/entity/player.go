package entity

import (
	"strings"

	"github.com/marcus8448/hammer/internal/reversi"
)

const botIDPrefix = "bot:"

type Player struct {
	ID     string       `json:"id"`
	Color  reversi.Cell `json:"color,omitempty"`
	GameID string       `json:"game_id,omitempty"`
}

// NewBotPlayer - creates the in-game bot opponent for a game.
func NewBotPlayer(gameID string) *Player {
	return &Player{
		ID:     botIDPrefix + gameID,
		GameID: gameID,
	}
}

func (that *Player) IsBot() bool {
	return strings.HasPrefix(that.ID, botIDPrefix)
}

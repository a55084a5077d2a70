package bot

import (
	"github.com/marcus8448/hammer/internal/reversi"
)

// randomStrategy proposes every legal move, leaving the choice entirely to
// the driver's random pick.
type randomStrategy struct{}

func (that *randomStrategy) CandidateMoves(board reversi.Board, player reversi.Cell, _ float64) Candidates {
	return Candidates{Moves: reversi.LegalMoves(board, player)}
}

// greedyStrategy proposes the moves that flip the most pieces this turn.
type greedyStrategy struct{}

func (that *greedyStrategy) CandidateMoves(board reversi.Board, player reversi.Cell, _ float64) Candidates {
	var best []reversi.Move
	bestFlips := 0

	for _, move := range reversi.LegalMoves(board, player) {
		flips := len(reversi.PiecesToFlip(board, player, move.X, move.Y))
		switch {
		case flips > bestFlips:
			bestFlips = flips
			best = []reversi.Move{move}
		case flips == bestFlips:
			best = append(best, move)
		}
	}

	return Candidates{Moves: best}
}

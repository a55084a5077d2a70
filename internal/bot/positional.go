package bot

import (
	"gonum.org/v1/gonum/floats"

	"github.com/marcus8448/hammer/internal/reversi"
)

// cellWeights scores board squares by long-term value: corners are strong,
// the squares adjacent to corners hand the corner to the opponent.
var cellWeights = []float64{
	120, -20, 20, 5, 5, 20, -20, 120,
	-20, -40, -5, -5, -5, -5, -40, -20,
	20, -5, 15, 3, 3, 15, -5, 20,
	5, -5, 3, 3, 3, 3, -5, 5,
	5, -5, 3, 3, 3, 3, -5, 5,
	20, -5, 15, 3, 3, 15, -5, 20,
	-20, -40, -5, -5, -5, -5, -40, -20,
	120, -20, 20, 5, 5, 20, -20, 120,
}

// positionalStrategy proposes the moves whose placement plus captures land on
// the most valuable squares of a fixed weight table.
type positionalStrategy struct {
	weights []float64
}

func newPositionalStrategy() *positionalStrategy {
	return &positionalStrategy{weights: cellWeights}
}

func (that *positionalStrategy) CandidateMoves(board reversi.Board, player reversi.Cell, _ float64) Candidates {
	var best []reversi.Move
	bestScore := 0.0

	for _, move := range reversi.LegalMoves(board, player) {
		score := that.score(board, player, move)
		switch {
		case len(best) == 0 || score > bestScore:
			bestScore = score
			best = []reversi.Move{move}
		case score == bestScore:
			best = append(best, move)
		}
	}

	return Candidates{Moves: best}
}

// score builds a one-hot vector over the cells the move would turn to the
// mover's color and takes its dot product with the weight table.
func (that *positionalStrategy) score(board reversi.Board, player reversi.Cell, move reversi.Move) float64 {
	outcome := make([]float64, reversi.Size*reversi.Size)
	outcome[move.Y*reversi.Size+move.X] = 1

	for _, flip := range reversi.PiecesToFlip(board, player, move.X, move.Y) {
		outcome[flip.Y*reversi.Size+flip.X] = 1
	}

	return floats.Dot(that.weights, outcome)
}

package reversi

// directions - the 8 neighbor offsets checked when resolving captures.
// The order is fixed so capture sets come out deterministic.
var directions = [8][2]int{
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
}

// PiecesToFlip - returns the coordinates of every opposing piece captured by
// playing piece at (x, y). An empty result means the placement is illegal:
// a move is legal exactly when it captures at least one piece.
func PiecesToFlip(board Board, piece Cell, x, y int) []Move {
	if !OnBoard(x, y) || board[y][x] != Empty {
		return nil
	}

	var flips []Move
	for _, dir := range directions {
		dx, dy := dir[0], dir[1]

		xNow, yNow := x+dx, y+dy
		var run []Move

		// walk over the opponent's pieces in this direction
		for OnBoard(xNow, yNow) && board[yNow][xNow] != piece && board[yNow][xNow] != Empty {
			run = append(run, Move{X: xNow, Y: yNow})
			xNow += dx
			yNow += dy
		}

		// the run only counts if it is bracketed by our own piece
		if OnBoard(xNow, yNow) && board[yNow][xNow] == piece {
			flips = append(flips, run...)
		}
	}

	return flips
}

// LegalMoves - returns every legal move for piece in row-major scan order.
// An empty result is a valid game state, not an error.
func LegalMoves(board Board, piece Cell) []Move {
	var moves []Move
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if len(PiecesToFlip(board, piece, x, y)) > 0 {
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}

	return moves
}

// Play - places piece at (x, y) and flips the captured pieces. If the move
// captures nothing the board is left untouched and false is returned; this is
// the only mutating entry point into the board.
func Play(board *Board, piece Cell, x, y int) bool {
	flips := PiecesToFlip(*board, piece, x, y)
	if len(flips) == 0 {
		return false
	}

	board[y][x] = piece
	for _, flip := range flips {
		board[flip.Y][flip.X] = piece
	}

	return true
}

// Evaluate - returns the material score of the board: +1 per black piece,
// -1 per white. Positive means black is ahead.
func Evaluate(board Board) int {
	score := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch board[y][x] {
			case Black:
				score++
			case White:
				score--
			}
		}
	}

	return score
}

// NextPlayer - returns the color that moves after piece.
func NextPlayer(piece Cell) Cell {
	if piece == Black {
		return White
	}

	return Black
}

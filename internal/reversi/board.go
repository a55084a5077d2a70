package reversi

import (
	"errors"
	"fmt"
	"strings"
)

// Size - the board is always 8x8.
const Size = 8

var ErrOutOfRange = errors.New("coordinate is out of range")

// Cell - the contents of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

func (that Cell) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// symbol - single-character rendering used by Board.String.
func (that Cell) symbol() string {
	switch that {
	case Black:
		return "B"
	case White:
		return "W"
	default:
		return " "
	}
}

// Board - an 8x8 grid of cells, indexed [y][x].
type Board [Size][Size]Cell

// Move - a candidate or chosen cell coordinate.
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewBoard - returns the standard starting position: empty except for the
// central 2x2 cross of alternating colors.
func NewBoard() Board {
	var board Board
	board[3][3] = White
	board[3][4] = Black
	board[4][3] = Black
	board[4][4] = White

	return board
}

// OnBoard - reports whether (x, y) is a valid board coordinate.
func OnBoard(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// At - returns the cell at (x, y).
func (that *Board) At(x, y int) (Cell, error) {
	if !OnBoard(x, y) {
		return Empty, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x, y)
	}

	return that[y][x], nil
}

// Set - overwrites the cell at (x, y). Only Play writes to the board.
func (that *Board) Set(x, y int, cell Cell) error {
	if !OnBoard(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x, y)
	}

	that[y][x] = cell

	return nil
}

// String - renders the board as a bordered text table, one row per line.
func (that Board) String() string {
	border := strings.Repeat("-", 2*Size+1)

	var sb strings.Builder
	sb.WriteString(border + "\n")
	for y := 0; y < Size; y++ {
		sb.WriteString("|")
		for x := 0; x < Size; x++ {
			sb.WriteString(that[y][x].symbol() + "|")
		}
		sb.WriteString("\n" + border + "\n")
	}

	return sb.String()
}

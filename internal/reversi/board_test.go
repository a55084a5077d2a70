package reversi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: the four central cells hold the standard starting cross
	require.Equal(t, White, board[3][3])
	require.Equal(t, Black, board[3][4])
	require.Equal(t, Black, board[4][3])
	require.Equal(t, White, board[4][4])

	// Then: every other cell is empty
	count := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if board[y][x] != Empty {
				count++
			}
		}
	}
	require.Equal(t, 4, count)
}

func TestOnBoard(t *testing.T) {
	// Then: the corners are on the board
	assert.True(t, OnBoard(0, 0))
	assert.True(t, OnBoard(7, 7))
	assert.True(t, OnBoard(0, 7))
	assert.True(t, OnBoard(7, 0))

	// Then: anything past an edge is not
	assert.False(t, OnBoard(-1, 0))
	assert.False(t, OnBoard(0, -1))
	assert.False(t, OnBoard(8, 0))
	assert.False(t, OnBoard(0, 8))
}

func TestBoard_At(t *testing.T) {
	board := NewBoard()

	t.Run("in range", func(t *testing.T) {
		// When: an in-range cell is read
		cell, err := board.At(3, 3)

		// Then: its contents are returned
		require.NoError(t, err)
		assert.Equal(t, White, cell)
	})

	t.Run("out of range", func(t *testing.T) {
		// When: an out-of-range cell is read
		_, err := board.At(8, 3)

		// Then: ErrOutOfRange is returned
		require.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestBoard_Set(t *testing.T) {
	t.Run("in range", func(t *testing.T) {
		board := NewBoard()

		// When: an in-range cell is written
		err := board.Set(0, 0, Black)

		// Then: the write lands
		require.NoError(t, err)
		assert.Equal(t, Black, board[0][0])
	})

	t.Run("out of range", func(t *testing.T) {
		board := NewBoard()

		// When: an out-of-range write is attempted
		err := board.Set(-1, 0, Black)

		// Then: ErrOutOfRange is returned and the board is unchanged
		require.ErrorIs(t, err, ErrOutOfRange)
		assert.Equal(t, NewBoard(), board)
	})
}

func TestBoard_String(t *testing.T) {
	// When: the starting board is rendered
	rendered := NewBoard().String()

	expected := "-----------------\n" +
		"| | | | | | | | |\n" +
		"-----------------\n" +
		"| | | | | | | | |\n" +
		"-----------------\n" +
		"| | | | | | | | |\n" +
		"-----------------\n" +
		"| | | |W|B| | | |\n" +
		"-----------------\n" +
		"| | | |B|W| | | |\n" +
		"-----------------\n" +
		"| | | | | | | | |\n" +
		"-----------------\n" +
		"| | | | | | | | |\n" +
		"-----------------\n" +
		"| | | | | | | | |\n" +
		"-----------------\n"

	// Then: it matches the bordered table format
	require.Equal(t, expected, rendered)
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "black", Black.String())
	assert.Equal(t, "white", White.String())
	assert.Equal(t, "empty", Empty.String())
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardSize(t *testing.T) {
	t.Run("Selectable sizes are valid", func(t *testing.T) {
		for _, size := range BoardSizes() {
			assert.True(t, size.Valid(), "size %d", size)
		}
	})

	t.Run("Other sizes are not valid", func(t *testing.T) {
		for _, size := range []BoardSize{0, 1, 2, 6, -3} {
			assert.False(t, size.Valid(), "size %d", size)
		}
	})

	t.Run("Cells is the square of the size", func(t *testing.T) {
		assert.Equal(t, 9, SmallBoard.Cells())
		assert.Equal(t, 16, MediumBoard.Cells())
		assert.Equal(t, 25, LargeBoard.Cells())
	})
}

func TestNewBoard(t *testing.T) {
	for _, size := range BoardSizes() {
		// When: a board is created
		board := NewBoard(size)

		// Then: it has size^2 empty cells
		require.Len(t, board, size.Cells())
		assert.Equal(t, int(size), board.CellsInRow())
		assert.Len(t, board.EmptyCells(), size.Cells())
		assert.False(t, board.IsFull())
	}
}

func TestLines(t *testing.T) {
	t.Run("3x3", func(t *testing.T) {
		assert.Equal(t, []int{0, 4, 8}, MainDiagonal(3))
		assert.Equal(t, []int{2, 4, 6}, AntiDiagonal(3))
		assert.Equal(t, []int{3, 4, 5}, Row(3, 1))
		assert.Equal(t, []int{2, 5, 8}, Column(3, 2))
	})

	t.Run("4x4", func(t *testing.T) {
		assert.Equal(t, []int{0, 5, 10, 15}, MainDiagonal(4))
		assert.Equal(t, []int{3, 6, 9, 12}, AntiDiagonal(4))
		assert.Equal(t, []int{12, 13, 14, 15}, Row(4, 3))
		assert.Equal(t, []int{1, 5, 9, 13}, Column(4, 1))
	})

	t.Run("5x5 anti-diagonal ends at n^2-n", func(t *testing.T) {
		diagonal := AntiDiagonal(5)
		assert.Equal(t, []int{4, 8, 12, 16, 20}, diagonal)
		assert.Equal(t, 5*5-5, diagonal[len(diagonal)-1])
	})
}

func TestBoard_WinningSymbol(t *testing.T) {
	const (
		o = SymbolO
		x = SymbolX
		e = EmptyCell
	)

	tests := []struct {
		name   string
		board  Board
		want   Symbol
		wantOK bool
	}{
		{
			name:  "Empty board",
			board: NewBoard(SmallBoard),
		},
		{
			name: "Partial board",
			board: Board{
				x, e, e,
				e, o, e,
				e, e, e,
			},
		},
		{
			name: "Top row",
			board: Board{
				x, x, x,
				o, e, o,
				e, e, e,
			},
			want: x, wantOK: true,
		},
		{
			name: "Middle column",
			board: Board{
				x, o, e,
				x, o, e,
				e, o, e,
			},
			want: o, wantOK: true,
		},
		{
			name: "Main diagonal",
			board: Board{
				x, o, e,
				e, x, o,
				e, e, x,
			},
			want: x, wantOK: true,
		},
		{
			name: "Anti-diagonal",
			board: Board{
				e, e, o,
				e, o, x,
				o, x, x,
			},
			want: o, wantOK: true,
		},
		{
			name: "Full board without a line",
			board: Board{
				x, o, x,
				o, x, o,
				o, x, o,
			},
		},
		{
			name: "4x4 last column",
			board: Board{
				e, e, e, o,
				x, e, e, o,
				x, x, e, o,
				e, e, x, o,
			},
			want: o, wantOK: true,
		},
		{
			name: "4x4 three in a row is not enough",
			board: Board{
				x, x, x, e,
				o, o, o, e,
				e, e, e, e,
				e, e, e, e,
			},
		},
		{
			name: "5x5 anti-diagonal",
			board: Board{
				e, e, e, e, x,
				e, e, e, x, o,
				e, e, x, o, e,
				e, x, o, e, e,
				x, o, e, e, e,
			},
			want: x, wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: the board is evaluated
			symbol, ok := tt.board.WinningSymbol()

			// Then: the owner of the first complete line is reported
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, symbol)
		})
	}
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board with one symbol
	board := NewBoard(SmallBoard)
	board[4] = SymbolX

	// When: the clone is modified
	clone := board.Clone()
	clone[0] = SymbolO

	// Then: the original board is unchanged
	assert.Equal(t, EmptyCell, board[0])
	assert.Equal(t, SymbolX, clone[4])
}

package entity

import "slices"

// BoardSize is the number of cells in one row of a square board.
type BoardSize int

const (
	SmallBoard  BoardSize = 3
	MediumBoard BoardSize = 4
	LargeBoard  BoardSize = 5
)

// BoardSizes returns the selectable board sizes in menu order.
func BoardSizes() []BoardSize {
	return []BoardSize{SmallBoard, MediumBoard, LargeBoard}
}

func (that BoardSize) Valid() bool {
	return slices.Contains(BoardSizes(), that)
}

func (that BoardSize) Cells() int {
	return int(that) * int(that)
}

// Board holds cellsInRow^2 cells in row-major order, index 0 is the top-left cell.
type Board []Symbol

func NewBoard(size BoardSize) Board {
	return make(Board, size.Cells())
}

// CellsInRow returns the side length of the board.
func (that Board) CellsInRow() int {
	n := 0
	for n*n < len(that) {
		n++
	}
	return n
}

func (that Board) Contains(cell int) bool {
	return cell >= 0 && cell < len(that)
}

func (that Board) IsFull() bool {
	return !slices.Contains(that, EmptyCell)
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell.IsEmpty() {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that Board) Clone() Board {
	return slices.Clone(that)
}

// MainDiagonal returns the indices from the top-left to the bottom-right corner.
func MainDiagonal(n int) []int {
	return line(0, n+1, n)
}

// AntiDiagonal returns the indices from the top-right to the bottom-left corner.
func AntiDiagonal(n int) []int {
	return line(n-1, n-1, n)
}

// Row returns the indices of the i-th row, counting from zero.
func Row(n, i int) []int {
	return line(i*n, 1, n)
}

// Column returns the indices of the i-th column, counting from zero.
func Column(n, i int) []int {
	return line(i, n, n)
}

func line(start, step, n int) []int {
	indices := make([]int, n)
	for k := range indices {
		indices[k] = start + k*step
	}
	return indices
}

// lineOwner reports the symbol filling every cell of the line, if there is one.
func lineOwner(board Board, indices []int) (Symbol, bool) {
	if len(indices) == 0 {
		return EmptyCell, false
	}

	first := board[indices[0]]
	if first.IsEmpty() {
		return EmptyCell, false
	}

	for _, i := range indices[1:] {
		if board[i] != first {
			return EmptyCell, false
		}
	}

	return first, true
}

// WinningSymbol checks the diagonals first, then every row followed by the column with the same index.
// The first complete line decides.
func (that Board) WinningSymbol() (Symbol, bool) {
	n := that.CellsInRow()

	for _, diagonal := range [][]int{MainDiagonal(n), AntiDiagonal(n)} {
		if symbol, ok := lineOwner(that, diagonal); ok {
			return symbol, true
		}
	}

	for i := range n {
		if symbol, ok := lineOwner(that, Row(n, i)); ok {
			return symbol, true
		}
		if symbol, ok := lineOwner(that, Column(n, i)); ok {
			return symbol, true
		}
	}

	return EmptyCell, false
}

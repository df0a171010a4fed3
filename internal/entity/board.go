package entity

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

// WinningMasks holds one bitmask per winning line (3 rows, 3 columns, 2 diagonals),
// where bit i is set when the cell with index i belongs to the line.
var WinningMasks = buildWinningMasks()

// Board is the 3x3 playing field. Cells are only ever marked, never cleared.
type Board struct {
	cells [Dimension * Dimension]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// Cells - returns a copy of all cells in index order.
func (that *Board) Cells() []Cell {
	cells := make([]Cell, len(that.cells))
	copy(cells, that.cells[:])

	return cells
}

func (that *Board) IsOccupied(coord Coord) bool {
	index := coord.Index()
	if !that.inRange(index) {
		return false
	}

	return that.cells[index].IsMarked()
}

// Place - marks the cell at coord. The board is left untouched on error.
func (that *Board) Place(coord Coord, mark Mark) error {
	index := coord.Index()
	if !that.inRange(index) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if that.cells[index].IsMarked() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that.cells[index].mark = mark

	return nil
}

// HasWon - reports whether mark covers at least one complete winning line.
func (that *Board) HasWon(mark Mark) bool {
	score := that.markMask(mark)

	return lo.SomeBy(WinningMasks, func(mask int) bool {
		return score&mask == mask
	})
}

func (that *Board) IsFull() bool {
	return lo.EveryBy(that.cells[:], func(cell Cell) bool {
		return cell.IsMarked()
	})
}

func (that *Board) markMask(mark Mark) int {
	score := 0
	for index, cell := range that.cells {
		if cell.IsMarkedWith(mark) {
			score += 1 << index
		}
	}

	return score
}

func (that *Board) inRange(index int) bool {
	return index >= 0 && index < len(that.cells)
}

func buildWinningMasks() []int {
	lines := make([][]Coord, 0, 2*Dimension+2)

	var mainDiagonal, antiDiagonal []Coord
	for i := 0; i < Dimension; i++ {
		var row, column []Coord
		for j := 0; j < Dimension; j++ {
			row = append(row, Coord{X: j, Y: i})
			column = append(column, Coord{X: i, Y: j})
		}

		lines = append(lines, row, column)

		mainDiagonal = append(mainDiagonal, Coord{X: i, Y: i})
		antiDiagonal = append(antiDiagonal, Coord{X: Dimension - 1 - i, Y: i})
	}

	lines = append(lines, mainDiagonal, antiDiagonal)

	return lo.Map(lines, func(line []Coord, _ int) int {
		return lo.SumBy(line, func(coord Coord) int {
			return 1 << coord.Index()
		})
	})
}

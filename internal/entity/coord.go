package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

const (
	Dimension = 3

	directionSeparator = "-"
	directionCenter    = "center"
)

// Coord addresses one cell of the board. X is the horizontal axis value
// (left, center, right) and Y the vertical one (top, center, bottom).
type Coord struct {
	X int
	Y int
}

// Index - returns the linear board index of the coordinate.
func (that Coord) Index() int {
	return that.Y*Dimension + that.X
}

// CoordFromIndex - is the reverse of Coord.Index.
func CoordFromIndex(index int) Coord {
	return Coord{X: index % Dimension, Y: index / Dimension}
}

var (
	rowDirections = map[string]int{
		"left":   0,
		"center": 1,
		"right":  2,
	}

	columnDirections = map[string]int{
		"top":    0,
		"center": 1,
		"bottom": 2,
	}
)

// ParseCoord - translates a directional phrase like "top-left" or "center" into a Coord.
// Both token orders are accepted: the first token is tried as the row direction,
// and if that fails, as the column direction.
func ParseCoord(input string) (Coord, error) {
	direction := strings.ToLower(strings.TrimSpace(input))

	if !strings.Contains(direction, directionSeparator) {
		if direction == directionCenter {
			return Coord{X: rowDirections[directionCenter], Y: columnDirections[directionCenter]}, nil
		}

		return Coord{}, fmt.Errorf("%w: %q", apperror.ErrUnknownDirection, input)
	}

	parts := strings.Split(direction, directionSeparator)
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", apperror.ErrTooManyParts, input)
	}

	if coord, err := resolveDirections(parts[0], parts[1]); err == nil {
		return coord, nil
	}

	return resolveDirections(parts[1], parts[0])
}

func resolveDirections(rowPart, columnPart string) (Coord, error) {
	x, ok := rowDirections[strings.TrimSpace(rowPart)]
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", apperror.ErrUnknownRow, rowPart)
	}

	y, ok := columnDirections[strings.TrimSpace(columnPart)]
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", apperror.ErrUnknownColumn, columnPart)
	}

	return Coord{X: x, Y: y}, nil
}

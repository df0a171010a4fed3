package entity

import "errors"

func errorIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// boardWith - builds a board with the given marks at the given indexes.
func boardWith(marks map[int]Mark) *Board {
	board := NewBoard()
	for index, mark := range marks {
		board.cells[index].mark = mark
	}

	return board
}

package entity

// Mark is one of the two symbols a player can place on the board.
type Mark int8

const (
	MarkX Mark = iota + 1
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// Cell is a single board field. The zero value is an empty cell.
type Cell struct {
	mark Mark
}

func (that Cell) IsMarked() bool {
	return that.mark != 0
}

func (that Cell) IsMarkedWith(mark Mark) bool {
	return that.IsMarked() && that.mark == mark
}

// Mark - returns the mark of the cell and false if the cell is empty.
func (that Cell) Mark() (Mark, bool) {
	return that.mark, that.IsMarked()
}

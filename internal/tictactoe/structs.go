package tictactoe

import "github.com/rocketscienceinc/tictactoe-terminal/internal/entity"

// Displayer renders the board.
type Displayer interface {
	Display(board *entity.Board)
}

// Writer emits one full line of text.
type Writer interface {
	WriteLine(line string)
}

// Reader blocks until the next line of operator input is available.
type Reader interface {
	ReadLine() (string, error)
}

type chooser interface {
	ChooseCoord() entity.Coord
}

type Status int8

const (
	StatusInProgress Status = iota
	StatusDraw
	StatusWon
)

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in progress"
	case StatusDraw:
		return "draw"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Outcome is the state the game ended in. Winner is only set for StatusWon.
type Outcome struct {
	Status Status
	Winner entity.Mark
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that Outcome) IsWon() bool {
	return that.Status == StatusWon
}

package terminal

import (
	"io"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

type FieldFormatter interface {
	Format(cell entity.Cell) string
}

// BracketFormatter renders a cell as "[ ]", "[X]" or "[O]".
type BracketFormatter struct{}

func (BracketFormatter) Format(cell entity.Cell) string {
	if mark, ok := cell.Mark(); ok {
		return "[" + mark.String() + "]"
	}

	return "[ ]"
}

// Display renders the board as a 3x3 grid, one line per row.
type Display struct {
	logger    *slog.Logger
	out       io.Writer
	formatter FieldFormatter
}

func NewDisplay(logger *slog.Logger, out io.Writer, formatter FieldFormatter) *Display {
	return &Display{
		logger:    logger.With("component", "display"),
		out:       out,
		formatter: formatter,
	}
}

func (that *Display) Display(board *entity.Board) {
	fields := lo.Map(board.Cells(), func(cell entity.Cell, _ int) string {
		return that.formatter.Format(cell)
	})

	var sb strings.Builder
	for _, row := range lo.Chunk(fields, entity.Dimension) {
		sb.WriteString(strings.Join(row, ""))
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		that.logger.Error("failed to display board", "error", err)
	}
}

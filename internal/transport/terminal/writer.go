package terminal

import (
	"fmt"
	"io"
	"log/slog"
)

type Writer struct {
	logger *slog.Logger
	out    io.Writer
}

func NewWriter(logger *slog.Logger, out io.Writer) *Writer {
	return &Writer{
		logger: logger.With("component", "writer"),
		out:    out,
	}
}

func (that *Writer) WriteLine(line string) {
	if _, err := fmt.Fprintln(that.out, line); err != nil {
		that.logger.Error("failed to write line", "error", err)
	}
}

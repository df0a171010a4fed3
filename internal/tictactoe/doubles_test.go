package tictactoe

import (
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

type scriptedReader struct {
	lines []string
	reads int
}

func (that *scriptedReader) ReadLine() (string, error) {
	if that.reads >= len(that.lines) {
		return "", io.EOF
	}

	line := that.lines[that.reads]
	that.reads++

	return line, nil
}

type recordingWriter struct {
	lines []string
}

func (that *recordingWriter) WriteLine(line string) {
	that.lines = append(that.lines, line)
}

func (that *recordingWriter) count(prefix string) int {
	n := 0
	for _, line := range that.lines {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}

	return n
}

type countingDisplayer struct {
	calls int
}

func (that *countingDisplayer) Display(_ *entity.Board) {
	that.calls++
}

type fixedChooser struct {
	coords []entity.Coord
	calls  int
}

func (that *fixedChooser) ChooseCoord() entity.Coord {
	coord := that.coords[that.calls%len(that.coords)]
	that.calls++

	return coord
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustName(s string) entity.Name {
	name, err := entity.NewName(s)
	if err != nil {
		panic(err)
	}

	return name
}

package terminal

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

// Reader reads operator input line by line from the terminal.
type Reader struct {
	instance *readline.Instance
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewReader - an empty historyFile disables input history.
func NewReader(prompt, historyFile string) (*Reader, error) {
	instance, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}

	return &Reader{instance: instance}, nil
}

// ReadLine - Ctrl-C and Ctrl-D end the input, there is nothing else to read after them.
func (that *Reader) ReadLine() (string, error) {
	line, err := that.instance.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return "", fmt.Errorf("%w: %w", apperror.ErrInputSourceExhausted, err)
	case err != nil:
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return line, nil
}

// Stdout - output that does not clobber the prompt line.
func (that *Reader) Stdout() io.Writer {
	return that.instance.Stdout()
}

func (that *Reader) Close() error {
	return that.instance.Close()
}

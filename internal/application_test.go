package application

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

type lines struct {
	input  []string
	output []string
}

func (that *lines) ReadLine() (string, error) {
	if len(that.input) == 0 {
		return "", io.EOF
	}

	line := that.input[0]
	that.input = that.input[1:]

	return line, nil
}

func (that *lines) WriteLine(line string) {
	that.output = append(that.output, line)
}

func (that *lines) Display(_ *entity.Board) {}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewGame(t *testing.T) {
	t.Run("Multi player mode asks both humans", func(t *testing.T) {
		// Given: a multi player config
		conf := &config.Config{
			Mode:     config.ModeMulti,
			Player:   config.Player{Name: "Alice"},
			Opponent: config.Player{Name: "Bob"},
		}
		term := &lines{input: []string{"top-left", "center", "top-center", "center-left", "top-right"}}

		// When: building and playing the game
		game, err := NewGame(discardLogger(), conf, term, term, term)
		require.NoError(t, err)

		outcome, err := game.Play()

		// Then: the first player wins on the top row
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Outcome{Status: tictactoe.StatusWon, Winner: entity.MarkX}, outcome)
		assert.Contains(t, term.output, "X has WON")
	})

	t.Run("Single player mode ends without error", func(t *testing.T) {
		// Given: a single player config and a human who tries every cell in turn
		conf := &config.Config{Mode: config.ModeSingle, Player: config.Player{Name: "Alice"}}
		term := &lines{input: []string{
			"top-left", "top-center", "top-right",
			"center-left", "center", "center-right",
			"bottom-left", "bottom-center", "bottom-right",
		}}
		term.input = append(term.input, term.input...)
		term.input = append(term.input, term.input...)

		// When: building and playing the game
		game, err := NewGame(discardLogger(), conf, term, term, term)
		require.NoError(t, err)

		outcome, err := game.Play()

		// Then: the game reaches a terminal state
		require.NoError(t, err)
		assert.NotEqual(t, tictactoe.StatusInProgress, outcome.Status)
	})

	t.Run("Returns ErrUnknownMode", func(t *testing.T) {
		conf := &config.Config{Mode: "online", Player: config.Player{Name: "Alice"}}

		_, err := NewGame(discardLogger(), conf, &lines{}, &lines{}, &lines{})

		assert.ErrorIs(t, err, apperror.ErrUnknownMode)
	})

	t.Run("Returns a name error for a short player name", func(t *testing.T) {
		conf := &config.Config{Mode: config.ModeSingle, Player: config.Player{Name: "Al"}}

		_, err := NewGame(discardLogger(), conf, &lines{}, &lines{}, &lines{})

		assert.ErrorIs(t, err, apperror.ErrNameTooShort)
	})

	t.Run("Returns a name error for a long opponent name", func(t *testing.T) {
		conf := &config.Config{
			Mode:     config.ModeMulti,
			Player:   config.Player{Name: "Alice"},
			Opponent: config.Player{Name: strings.Repeat("b", 61)},
		}

		_, err := NewGame(discardLogger(), conf, &lines{}, &lines{}, &lines{})

		assert.ErrorIs(t, err, apperror.ErrNameTooLong)
	})
}

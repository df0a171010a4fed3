package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	msgYourTurn = "%s it's your turn. Where do you want to place your mark? " +
		"Your input should be the column direction (top, center, bottom) and the row direction (left, center, right) " +
		`separated by a minus, e.g. "top-left" or "center"`
	msgInvalidInput = "That is not a valid input..."
	msgFieldTaken   = "That field is already taken. Please choose another."
	msgDraw         = "We've reached a draw."
	msgWon          = "%s has WON"
)

// GameController drives one game from an empty board to a draw or a win.
// The first side always moves first within a round.
type GameController struct {
	logger *slog.Logger

	board *entity.Board
	sides [2]entity.Side

	bot       chooser
	displayer Displayer
	reader    Reader
	writer    Writer
}

func NewGameController(
	logger *slog.Logger,
	first, second entity.Side,
	bot chooser,
	displayer Displayer,
	reader Reader,
	writer Writer,
) *GameController {
	return &GameController{
		logger: logger.With("component", "game_controller"),

		board: entity.NewBoard(),
		sides: [2]entity.Side{first, second},

		bot:       bot,
		displayer: displayer,
		reader:    reader,
		writer:    writer,
	}
}

// NewSinglePlayerGame - a named human playing X against the bot playing O.
func NewSinglePlayerGame(
	logger *slog.Logger,
	name entity.Name,
	bot chooser,
	displayer Displayer,
	reader Reader,
	writer Writer,
) *GameController {
	return NewGameController(
		logger,
		entity.NewSide(entity.MarkX, entity.NewHumanPlayer(name)),
		entity.NewSide(entity.MarkO, entity.NewBotPlayer()),
		bot, displayer, reader, writer,
	)
}

// Board - the board being played on, for inspecting the position after Play.
func (that *GameController) Board() *entity.Board {
	return that.board
}

// Play - runs the turn loop until the game reaches a terminal state.
// A returned error is fatal: either the input source failed or the board rejected
// a move that had already passed the occupancy check.
func (that *GameController) Play() (Outcome, error) {
	for {
		that.displayer.Display(that.board)

		if that.board.IsFull() {
			that.writer.WriteLine(msgDraw)
			that.logger.Info("game finished", "status", StatusDraw.String())

			return Outcome{Status: StatusDraw}, nil
		}

		for _, side := range that.sides {
			won, err := that.takeTurn(side)
			if err != nil {
				return Outcome{Status: StatusInProgress}, err
			}

			// a win on the last free cell is reported as a win, never as a draw
			if won {
				that.displayer.Display(that.board)
				that.writer.WriteLine(fmt.Sprintf(msgWon, side.Mark))
				that.logger.Info("game finished", "status", StatusWon.String(), "winner", side.Mark.String())

				return Outcome{Status: StatusWon, Winner: side.Mark}, nil
			}

			// the board has an odd number of cells, so the first side can fill it mid-round
			if that.board.IsFull() {
				break
			}
		}
	}
}

func (that *GameController) takeTurn(side entity.Side) (bool, error) {
	coord, err := that.getPosition(side.Player)
	if err != nil {
		return false, fmt.Errorf("failed to get position for %s: %w", side.Mark, err)
	}

	if err = that.board.Place(coord, side.Mark); err != nil {
		return false, fmt.Errorf("%w: could not mark field with %s: %w", apperror.ErrInvariantViolation, side.Mark, err)
	}

	that.logger.Debug("mark placed", "mark", side.Mark.String(), "cell", coord.Index())

	return that.board.HasWon(side.Mark), nil
}

// getPosition - asks the player until a free cell is chosen.
func (that *GameController) getPosition(player entity.Player) (entity.Coord, error) {
	for {
		var coord entity.Coord

		switch player.Kind {
		case entity.BotPlayer:
			coord = that.bot.ChooseCoord()
		case entity.HumanPlayer:
			var err error
			if coord, err = that.askForDirection(player.Name); err != nil {
				return entity.Coord{}, err
			}
		default:
			return entity.Coord{}, fmt.Errorf("%w: unknown player kind %d", apperror.ErrInvariantViolation, player.Kind)
		}

		if !that.board.IsOccupied(coord) {
			return coord, nil
		}

		that.writer.WriteLine(msgFieldTaken)
	}
}

func (that *GameController) askForDirection(name entity.Name) (entity.Coord, error) {
	for {
		that.writer.WriteLine(fmt.Sprintf(msgYourTurn, name))

		input, err := that.reader.ReadLine()
		if err != nil {
			return entity.Coord{}, fmt.Errorf("failed to read direction: %w", err)
		}

		coord, err := entity.ParseCoord(input)
		if err == nil {
			return coord, nil
		}

		that.logger.Debug("invalid direction", "input", input, "error", err)
		that.writer.WriteLine(msgInvalidInput)
	}
}

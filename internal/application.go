package application

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/service"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	reader, err := terminal.NewReader(conf.Terminal.Prompt, conf.Terminal.HistoryFile)
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}

	defer func() {
		if err = reader.Close(); err != nil {
			log.Error("could not close terminal", "error", err)
		}
	}()

	displayer := terminal.NewDisplay(logger, reader.Stdout(), terminal.BracketFormatter{})
	writer := terminal.NewWriter(logger, reader.Stdout())

	game, err := NewGame(logger, conf, displayer, reader, writer)
	if err != nil {
		return err
	}

	log.Info("Starting game", "mode", conf.Mode)

	outcome, err := game.Play()
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	log.Info("Game over", "status", outcome.Status.String(), "winner", outcome.Winner.String())

	return nil
}

// NewGame - binds the sides configured for the selected mode to a game controller.
func NewGame(
	logger *slog.Logger,
	conf *config.Config,
	displayer tictactoe.Displayer,
	reader tictactoe.Reader,
	writer tictactoe.Writer,
) (*tictactoe.GameController, error) {
	bot := service.NewBotService()

	playerName, err := entity.NewName(conf.Player.Name)
	if err != nil {
		return nil, fmt.Errorf("invalid player name: %w", err)
	}

	switch conf.Mode {
	case config.ModeSingle:
		return tictactoe.NewSinglePlayerGame(logger, playerName, bot, displayer, reader, writer), nil
	case config.ModeMulti:
		opponentName, err := entity.NewName(conf.Opponent.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid opponent name: %w", err)
		}

		return tictactoe.NewGameController(
			logger,
			entity.NewSide(entity.MarkX, entity.NewHumanPlayer(playerName)),
			entity.NewSide(entity.MarkO, entity.NewHumanPlayer(opponentName)),
			bot, displayer, reader, writer,
		), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, conf.Mode)
	}
}

package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

const (
	minNameLength = 3
	maxNameLength = 60
)

// Name is a validated, trimmed display name of a human player.
type Name struct {
	value string
}

// NewName - trims s and checks that it is between 3 and 60 characters long.
func NewName(s string) (Name, error) {
	trimmed := strings.TrimSpace(s)
	length := utf8.RuneCountInString(trimmed)

	switch {
	case length < minNameLength:
		return Name{}, fmt.Errorf("%w: %d characters", apperror.ErrNameTooShort, length)
	case length > maxNameLength:
		return Name{}, fmt.Errorf("%w: %d characters", apperror.ErrNameTooLong, length)
	}

	return Name{value: trimmed}, nil
}

func (that Name) String() string {
	return that.value
}

type PlayerKind int8

const (
	HumanPlayer PlayerKind = iota
	BotPlayer
)

// Player is either a named human or the automatic chooser.
type Player struct {
	Kind PlayerKind
	Name Name
}

func NewHumanPlayer(name Name) Player {
	return Player{Kind: HumanPlayer, Name: name}
}

func NewBotPlayer() Player {
	return Player{Kind: BotPlayer}
}

func (that Player) IsBot() bool {
	return that.Kind == BotPlayer
}

// Side binds a mark to the player placing it for the whole game.
type Side struct {
	Mark   Mark
	Player Player
}

func NewSide(mark Mark, player Player) Side {
	return Side{Mark: mark, Player: player}
}

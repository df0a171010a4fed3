package service

import (
	"lukechampine.com/frand"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

type BotService interface {
	ChooseCoord() entity.Coord
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// ChooseCoord - picks one of the nine cells uniformly at random. Occupancy is not
// considered, the game controller re-asks until a free cell comes up.
func (that *botService) ChooseCoord() entity.Coord {
	return entity.Coord{
		X: frand.Intn(entity.Dimension),
		Y: frand.Intn(entity.Dimension),
	}
}

package service

import (
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
)

// BotService picks the cells of the computer opponent.
type BotService interface {
	ChooseCell(board entity.Board) (int, error)
}

type botService struct {
	random pkg.Randomizer
}

func NewBotService(random pkg.Randomizer) BotService {
	return &botService{
		random: random,
	}
}

// ChooseCell - picks one of the empty cells with equal probability.
func (that *botService) ChooseCell(board entity.Board) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.random.IntN(len(availableCells))], nil
}

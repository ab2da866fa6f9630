package apperror

import "errors"

var (
	ErrNotConfigured       = errors.New("game is not configured")
	ErrInvalidPlayerName   = errors.New("player name is empty")
	ErrDuplicatePlayerName = errors.New("player names must be different")
	ErrInvalidBoardSize    = errors.New("unsupported board size")
	ErrCellOutOfBounds     = errors.New("cell number out of bounds")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrGameAlreadyFinished = errors.New("game is already finished")
	ErrNoAvailableMoves    = errors.New("no available moves")

	// input layer
	ErrEmptyInput    = errors.New("input is empty")
	ErrNotInteger    = errors.New("value is not an integer")
	ErrInvalidChoice = errors.New("invalid choice")
)

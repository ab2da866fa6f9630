package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type GameStatus string

const (
	StatusUnsettled GameStatus = "unsettled"
	StatusTie       GameStatus = "tie"
	StatusHasWinner GameStatus = "has_winner"
)

type GameMode string

const (
	HumanVsHuman    GameMode = "human_vs_human"
	ComputerVsHuman GameMode = "computer_vs_human"
)

// Game is the whole state of one match. It is replaced, never reset, when a new match starts.
type Game struct {
	ID      string     `json:"id"`
	Size    BoardSize  `json:"size"`
	Board   Board      `json:"board"`
	Players [2]Player  `json:"players"`
	Turn    int        `json:"turn"`
	Mode    GameMode   `json:"mode"`
	Status  GameStatus `json:"status"`
	Winner  *Player    `json:"winner,omitempty"`
}

func NewGame(id string, size BoardSize, mode GameMode, players [2]Player) *Game {
	return &Game{
		ID:      id,
		Size:    size,
		Board:   NewBoard(size),
		Players: players,
		Turn:    0,
		Mode:    mode,
		Status:  StatusUnsettled,
	}
}

func (that *Game) CurrentPlayer() Player {
	return that.Players[that.Turn]
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusTie || that.Status == StatusHasWinner
}

func (that *Game) IsUnsettled() bool {
	return that.Status == StatusUnsettled
}

func (that *Game) ConfirmUnsettled() error {
	if that.IsFinished() {
		return apperror.ErrGameAlreadyFinished
	}
	return nil
}

// MakeTurn puts the current player's symbol into the cell and passes the turn to the other player.
func (that *Game) MakeTurn(cell int) error {
	if err := that.ConfirmUnsettled(); err != nil {
		return err
	}

	if !that.Board.Contains(cell) {
		return fmt.Errorf("%w: cell %d, expected a number from 0 to %d", apperror.ErrCellOutOfBounds, cell, len(that.Board)-1)
	}

	if !that.Board[cell].IsEmpty() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Board[cell] = that.CurrentPlayer().Symbol
	that.Turn = 1 - that.Turn

	that.UpdateGameState()

	return nil
}

// UpdateGameState derives the status from the board. A finished game is left untouched.
func (that *Game) UpdateGameState() {
	if that.IsFinished() {
		return
	}

	if symbol, ok := that.Board.WinningSymbol(); ok {
		winner := that.playerBySymbol(symbol)
		that.Winner = &winner
		that.Status = StatusHasWinner
		return
	}

	if that.Board.IsFull() {
		that.Status = StatusTie
	}
}

func (that *Game) playerBySymbol(symbol Symbol) Player {
	if that.Players[0].Symbol == symbol {
		return that.Players[0]
	}
	return that.Players[1]
}

// Clone returns a deep copy that can be handed to readers.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Board = that.Board.Clone()
	if that.Winner != nil {
		winner := *that.Winner
		clone.Winner = &winner
	}
	return &clone
}

package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

// userProvidedSuffix marks a human player who picked the computer's name.
const userProvidedSuffix = "[USER-PROVIDED]"

// GameController owns one game at a time. It is not safe for concurrent use.
type GameController struct {
	random pkg.Randomizer
	bot    service.BotService

	game *entity.Game
}

type Option func(*GameController)

// WithRandomizer sets the source used for the symbol draw and, unless WithBot is given, the computer moves.
func WithRandomizer(random pkg.Randomizer) Option {
	return func(that *GameController) {
		that.random = random
	}
}

func WithBot(bot service.BotService) Option {
	return func(that *GameController) {
		that.bot = bot
	}
}

func NewGameController(opts ...Option) *GameController {
	controller := &GameController{}
	for _, opt := range opts {
		opt(controller)
	}

	if controller.random == nil {
		controller.random = pkg.NewRandomizer()
	}

	if controller.bot == nil {
		controller.bot = service.NewBotService(controller.random)
	}

	return controller
}

// Configure starts a new game. With one name the second player is the computer.
// Calling it again discards the previous game.
func (that *GameController) Configure(size entity.BoardSize, names ...string) error {
	return that.ConfigureWithID("", size, names...)
}

// ConfigureWithID is Configure with an identifier attached to the new game.
func (that *GameController) ConfigureWithID(id string, size entity.BoardSize, names ...string) error {
	if !size.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	first, second, mode, err := resolvePlayerNames(names)
	if err != nil {
		return err
	}

	firstSymbol, secondSymbol := that.randomSymbols()
	players := [2]entity.Player{
		entity.NewPlayer(first, firstSymbol),
		entity.NewPlayer(second, secondSymbol),
	}

	that.game = entity.NewGame(id, size, mode, players)

	return nil
}

func resolvePlayerNames(names []string) (first, second string, mode entity.GameMode, err error) {
	switch len(names) {
	case 0:
		return "", "", "", fmt.Errorf("%w: first player", apperror.ErrInvalidPlayerName)
	case 1, 2:
	default:
		return "", "", "", fmt.Errorf("%w: expected one or two names, got %d", apperror.ErrInvalidPlayerName, len(names))
	}

	first = names[0]
	if first == "" {
		return "", "", "", fmt.Errorf("%w: first player", apperror.ErrInvalidPlayerName)
	}

	if len(names) == 1 {
		if first == entity.ComputerName {
			first += userProvidedSuffix
		}
		return first, entity.ComputerName, entity.ComputerVsHuman, nil
	}

	second = names[1]
	if second == "" {
		return "", "", "", fmt.Errorf("%w: second player", apperror.ErrInvalidPlayerName)
	}

	if first == second {
		return "", "", "", fmt.Errorf("%w: %q", apperror.ErrDuplicatePlayerName, first)
	}

	return first, second, entity.HumanVsHuman, nil
}

func (that *GameController) randomSymbols() (entity.Symbol, entity.Symbol) {
	if that.random.IntN(2) == 0 {
		return entity.SymbolO, entity.SymbolX
	}
	return entity.SymbolX, entity.SymbolO
}

// ApplyMove places the current player's symbol into the cell. Against the computer the
// reply is played within the same call, so the caller only ever supplies human moves.
func (that *GameController) ApplyMove(cell int) error {
	if that.game == nil {
		return apperror.ErrNotConfigured
	}

	if err := that.game.ConfirmUnsettled(); err != nil {
		return err
	}

	if err := that.game.MakeTurn(cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if that.game.IsUnsettled() && that.game.Mode == entity.ComputerVsHuman {
		if err := that.computerTurn(); err != nil {
			return err
		}
	}

	return nil
}

func (that *GameController) computerTurn() error {
	cell, err := that.bot.ChooseCell(that.game.Board)
	if err != nil {
		return fmt.Errorf("computer failed to choose a cell: %w", err)
	}

	if err = that.game.MakeTurn(cell); err != nil {
		return fmt.Errorf("computer failed to make turn: %w", err)
	}

	return nil
}

func (that *GameController) IsConfigured() bool {
	return that.game != nil
}

// Snapshot returns a copy of the current game for display.
func (that *GameController) Snapshot() (*entity.Game, error) {
	if that.game == nil {
		return nil, apperror.ErrNotConfigured
	}
	return that.game.Clone(), nil
}

func (that *GameController) Board() entity.Board {
	if that.game == nil {
		return nil
	}
	return that.game.Board.Clone()
}

func (that *GameController) Players() [2]entity.Player {
	if that.game == nil {
		return [2]entity.Player{}
	}
	return that.game.Players
}

func (that *GameController) Status() entity.GameStatus {
	if that.game == nil {
		return entity.StatusUnsettled
	}
	return that.game.Status
}

// Winner returns the winning player once the game has one.
func (that *GameController) Winner() (entity.Player, bool) {
	if that.game == nil || that.game.Winner == nil {
		return entity.Player{}, false
	}
	return *that.game.Winner, true
}

func (that *GameController) CurrentPlayer() (entity.Player, error) {
	if that.game == nil {
		return entity.Player{}, apperror.ErrNotConfigured
	}
	return that.game.CurrentPlayer(), nil
}

func (that *GameController) Mode() entity.GameMode {
	if that.game == nil {
		return ""
	}
	return that.game.Mode
}

func (that *GameController) Size() entity.BoardSize {
	if that.game == nil {
		return 0
	}
	return that.game.Size
}

package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// GameScreen prints the game and asks the players for their choices.
// Prompts repeat until a valid answer is given; only a closed or broken input ends them early.
type GameScreen struct {
	out      io.Writer
	keyboard *KeyboardInput
	styles   *Styles

	showLegend bool
}

type ScreenOption func(*GameScreen)

// WithoutLegend hides the cell numbers printed above the board.
func WithoutLegend() ScreenOption {
	return func(that *GameScreen) {
		that.showLegend = false
	}
}

func NewGameScreen(out io.Writer, keyboard *KeyboardInput, opts ...ScreenOption) *GameScreen {
	screen := &GameScreen{
		out:        out,
		keyboard:   keyboard,
		styles:     NewStyles(out),
		showLegend: true,
	}
	for _, opt := range opts {
		opt(screen)
	}
	return screen
}

func (that *GameScreen) ShowFramedMessage(frame, message string) {
	that.println()
	that.println(that.styles.Frame(frame).Inherit(that.styles.Title).Render(message))
	that.println()
}

func (that *GameScreen) ShowError(err error) {
	that.println()
	that.println(that.styles.Frame("!").Inherit(that.styles.Error).Render(errorMessage(err)))
	that.println()
}

// errorMessage turns game errors into text for the players.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOutOfBounds):
		return "Incorrect cell number! Choose one of the numbers shown in the legend."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "The cell already contains a symbol! Choose another cell."
	case errors.Is(err, apperror.ErrDuplicatePlayerName):
		return "The name of player 1 cannot be the same as the name of player 2."
	case errors.Is(err, apperror.ErrInvalidPlayerName):
		return "Player name cannot be empty."
	case errors.Is(err, apperror.ErrGameAlreadyFinished):
		return "The game has already finished!"
	case errors.Is(err, apperror.ErrNotConfigured):
		return "The game is not configured!"
	default:
		return capitalize(err.Error())
	}
}

func (that *GameScreen) ChooseGameMode() (entity.GameMode, error) {
	that.println(that.styles.Heading.Render("Please select game mode"))
	that.println("1. Human vs Human")
	that.println("2. Computer vs Human")

	for {
		choice, err := that.readInt("Mode: ")
		if err != nil {
			return "", err
		}

		switch choice {
		case 1:
			that.println()
			return entity.HumanVsHuman, nil
		case 2:
			that.println()
			return entity.ComputerVsHuman, nil
		default:
			that.println(that.styles.Error.Render("Mode needs to be 1 or 2"))
		}
	}
}

// ChooseBoardSize offers every board size; an empty answer picks defaultSize.
func (that *GameScreen) ChooseBoardSize(defaultSize entity.BoardSize) (entity.BoardSize, error) {
	sizes := entity.BoardSizes()

	that.println(that.styles.Heading.Render("Please choose the size of the game board"))
	options := make([]string, 0, len(sizes))
	for i, size := range sizes {
		option := fmt.Sprintf("%d. %s (%dx%d)", i+1, sizeName(size), size, size)
		if size == defaultSize {
			option += " [default]"
		}
		options = append(options, option)
	}
	that.println(strings.Join(options, ", "))

	for {
		that.print(that.styles.Prompt.Render("Size: "))

		choice, err := that.keyboard.ReadInt()
		switch {
		case errors.Is(err, apperror.ErrEmptyInput) && defaultSize.Valid():
			that.println()
			return defaultSize, nil
		case isInputError(err):
			that.println(that.styles.Error.Render(capitalize(err.Error())))
			continue
		case err != nil:
			return 0, err
		}

		if choice < 1 || choice > len(sizes) {
			that.println(that.styles.Error.Render(fmt.Sprintf("Size needs to be a number from 1 to %d", len(sizes))))
			continue
		}

		that.println()
		return sizes[choice-1], nil
	}
}

// ChoosePlayers asks for two names against a human and for one against the computer.
func (that *GameScreen) ChoosePlayers(mode entity.GameMode) ([]string, error) {
	var prompts []string
	switch mode {
	case entity.HumanVsHuman:
		prompts = []string{"First player name: ", "Second player name: "}
	case entity.ComputerVsHuman:
		prompts = []string{"First player name: "}
	default:
		return nil, fmt.Errorf("%w: game mode %q", apperror.ErrInvalidChoice, mode)
	}

	names := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		name, err := that.readString(prompt)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	that.println()
	return names, nil
}

func (that *GameScreen) ShowGameBoard(board entity.Board) {
	n := board.CellsInRow()
	width := len(fmt.Sprint(len(board) - 1))

	if that.showLegend {
		that.println(that.styles.Heading.Render("LEGEND"))
		for row := range n {
			cells := make([]string, 0, n)
			for _, i := range entity.Row(n, row) {
				cells = append(cells, fmt.Sprintf("%*d", width, i))
			}
			that.println(that.styles.Legend.Render(strings.Join(cells, " ")))
		}
		that.println()
	}

	that.println(that.styles.Heading.Render("GAME BOARD"))
	for row := range n {
		cells := make([]string, 0, n)
		for _, i := range entity.Row(n, row) {
			cells = append(cells, strings.Repeat(" ", width-1)+that.styles.Symbol(board[i]))
		}
		that.println(strings.Join(cells, " "))
	}
	that.println()
}

func (that *GameScreen) ShowPlayerInfo(players [2]entity.Player) {
	that.println(that.styles.Heading.Render("PLAYERS"))

	infos := make([]string, 0, len(players))
	for _, player := range players {
		infos = append(infos, fmt.Sprintf("%s (%s)", player.Name, that.styles.Symbol(player.Symbol)))
	}
	that.println(that.styles.Info.Render(strings.Join(infos, ", ")))
}

// ChooseCell asks the turn-holder for a cell number. Range and occupancy are checked by the game.
func (that *GameScreen) ChooseCell(player entity.Player) (int, error) {
	that.println()
	that.printf("%s, please choose the cell number in which you want to put your symbol (%s)\n",
		player.Name, that.styles.Symbol(player.Symbol))

	return that.readInt("Cell: ")
}

func (that *GameScreen) ShowResult(game *entity.Game) {
	switch {
	case game.Status == entity.StatusTie:
		that.ShowFramedMessage("@", "It's a tie!")
	case game.Winner != nil:
		that.ShowFramedMessage("$", game.Winner.Name+" wins!")
	}
}

func (that *GameScreen) ShowScoreboard(scoreboard *entity.Scoreboard) {
	that.println(that.styles.Heading.Render(fmt.Sprintf("SCORE after %d game(s)", scoreboard.Played)))
	for _, name := range scoreboard.Names() {
		that.printf("%s: %d\n", name, scoreboard.Wins[name])
	}
	that.printf("Ties: %d\n", scoreboard.Ties)
	that.println()
}

func (that *GameScreen) AskPlayAgain() (bool, error) {
	for {
		answer, err := that.readString("Play again? [y/n]: ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			that.println()
			return true, nil
		case "n", "no":
			return false, nil
		default:
			that.println(that.styles.Error.Render("Please answer y or n"))
		}
	}
}

func (that *GameScreen) readString(prompt string) (string, error) {
	for {
		that.print(that.styles.Prompt.Render(prompt))

		value, err := that.keyboard.ReadString()
		if err == nil {
			return value, nil
		}
		if !isInputError(err) {
			return "", err
		}
		that.println(that.styles.Error.Render(capitalize(err.Error())))
	}
}

func (that *GameScreen) readInt(prompt string) (int, error) {
	for {
		that.print(that.styles.Prompt.Render(prompt))

		value, err := that.keyboard.ReadInt()
		if err == nil {
			return value, nil
		}
		if !isInputError(err) {
			return 0, err
		}
		that.println(that.styles.Error.Render(capitalize(err.Error())))
	}
}

func isInputError(err error) bool {
	return errors.Is(err, apperror.ErrEmptyInput) || errors.Is(err, apperror.ErrNotInteger)
}

func sizeName(size entity.BoardSize) string {
	switch size {
	case entity.SmallBoard:
		return "Small"
	case entity.MediumBoard:
		return "Medium"
	case entity.LargeBoard:
		return "Large"
	default:
		return "Custom"
	}
}

func capitalize(message string) string {
	if message == "" {
		return message
	}
	return strings.ToUpper(message[:1]) + message[1:]
}

func (that *GameScreen) print(text string) {
	_, _ = fmt.Fprint(that.out, text)
}

func (that *GameScreen) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(that.out, format, a...)
}

func (that *GameScreen) println(a ...any) {
	_, _ = fmt.Fprintln(that.out, a...)
}

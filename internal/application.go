package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// App is one console session: any number of games played one after another.
type App struct {
	log     *slog.Logger
	conf    *config.Config
	screen  *console.GameScreen
	manager *usecase.GameManager
}

// RunApp - runs a session on the given input and output until the players quit or the input is closed.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	return NewApp(logger, conf, in, out, tictactoe.NewGameController()).Run(ctx)
}

func NewApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer, engine *tictactoe.GameController) *App {
	var opts []console.ScreenOption
	if conf.Game.HideLegend {
		opts = append(opts, console.WithoutLegend())
	}

	return &App{
		log:     logger.With("component", "app"),
		conf:    conf,
		screen:  console.NewGameScreen(out, console.NewKeyboardInput(in), opts...),
		manager: usecase.NewGameManager(logger, engine),
	}
}

func (that *App) Run(ctx context.Context) error {
	that.log.InfoContext(ctx, "session started")
	that.screen.ShowFramedMessage("*", "TIC-TAC-TOE")

	err := that.session(ctx)
	if errors.Is(err, io.EOF) {
		that.log.InfoContext(ctx, "input closed, session finished")
		return nil
	}
	if err != nil {
		return err
	}

	that.log.InfoContext(ctx, "session finished", "played", that.manager.Scoreboard().Played)
	return nil
}

func (that *App) session(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		game, err := that.setup(ctx)
		if err != nil {
			return err
		}

		if game, err = that.play(ctx, game); err != nil {
			return err
		}

		that.screen.ShowResult(game)
		that.screen.ShowScoreboard(that.manager.Scoreboard())

		if that.conf.Game.SingleGame {
			return nil
		}

		again, err := that.screen.AskPlayAgain()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// setup asks for the mode, the board size and the names. Rejected names are asked again.
func (that *App) setup(ctx context.Context) (*entity.Game, error) {
	mode, err := that.screen.ChooseGameMode()
	if err != nil {
		return nil, err
	}

	size, err := that.screen.ChooseBoardSize(entity.BoardSize(that.conf.Game.DefaultBoardSize))
	if err != nil {
		return nil, err
	}

	for {
		names, err := that.screen.ChoosePlayers(mode)
		if err != nil {
			return nil, err
		}

		game, err := that.manager.StartGame(ctx, size, names...)
		switch {
		case err == nil:
			return game, nil
		case errors.Is(err, apperror.ErrInvalidPlayerName), errors.Is(err, apperror.ErrDuplicatePlayerName):
			that.screen.ShowError(err)
		default:
			return nil, err
		}
	}
}

// play asks for moves until the game is settled. Computer replies are made by the engine.
func (that *App) play(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	for game.IsUnsettled() {
		that.screen.ShowGameBoard(game.Board)
		that.screen.ShowPlayerInfo(game.Players)

		cell, err := that.screen.ChooseCell(game.CurrentPlayer())
		if err != nil {
			return nil, err
		}

		next, err := that.manager.MakeTurn(ctx, cell)
		switch {
		case err == nil:
			game = next
		case errors.Is(err, apperror.ErrCellOutOfBounds), errors.Is(err, apperror.ErrCellOccupied):
			that.screen.ShowError(err)
		default:
			return nil, err
		}
	}

	that.screen.ShowGameBoard(game.Board)

	return game, nil
}

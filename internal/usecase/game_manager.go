package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
)

type gameEngine interface {
	ConfigureWithID(id string, size entity.BoardSize, names ...string) error
	ApplyMove(cell int) error
	Snapshot() (*entity.Game, error)
}

// GameManager runs consecutive games of one session on top of the engine and keeps their score.
type GameManager struct {
	logger *slog.Logger
	engine gameEngine

	scoreboard *entity.Scoreboard
}

func NewGameManager(logger *slog.Logger, engine gameEngine) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		engine: engine,

		scoreboard: entity.NewScoreboard(),
	}
}

// StartGame configures a new game. The names are passed to the engine unchanged.
func (that *GameManager) StartGame(ctx context.Context, size entity.BoardSize, names ...string) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("failed start game: %w", err)
	}

	if err = that.engine.ConfigureWithID(gameID, size, names...); err != nil {
		that.logger.DebugContext(ctx, "configuration rejected", "error", err)
		return nil, fmt.Errorf("failed configure game: %w", err)
	}

	game, err := that.engine.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed get game: %w", err)
	}

	that.logger.InfoContext(ctx, "game started",
		"gameID", game.ID,
		"mode", game.Mode,
		"size", int(game.Size),
		"players", playerAttrs(game.Players),
	)

	return game, nil
}

// MakeTurn applies a human move and records the result once the game is over.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) (*entity.Game, error) {
	if err := that.engine.ApplyMove(cell); err != nil {
		that.logger.DebugContext(ctx, "turn rejected", "cell", cell, "error", err)
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	game, err := that.engine.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed get game: %w", err)
	}

	log := that.logger.With("gameID", game.ID)
	log.DebugContext(ctx, "turn made", "cell", cell, "empty", len(game.Board.EmptyCells()))

	if game.IsFinished() {
		that.scoreboard.Record(game)

		if game.Winner != nil {
			log.InfoContext(ctx, "game finished", "status", game.Status, "winner", game.Winner.Name)
		} else {
			log.InfoContext(ctx, "game finished", "status", game.Status)
		}
	}

	return game, nil
}

func (that *GameManager) Scoreboard() *entity.Scoreboard {
	return that.scoreboard.Clone()
}

func playerAttrs(players [2]entity.Player) []string {
	attrs := make([]string, 0, len(players))
	for _, player := range players {
		attrs = append(attrs, fmt.Sprintf("%s(%s)", player.Name, player.Symbol))
	}
	return attrs
}

package table

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/kellypool/internal/dependencies/clock"
	"github.com/mcoot/kellypool/internal/dependencies/random"
	"github.com/mcoot/kellypool/internal/model"
	"github.com/mcoot/kellypool/internal/services/game"
	"github.com/mcoot/kellypool/internal/storage"
)

const (
	// TableIDLength is the length of generated table IDs
	TableIDLength = 6
	// TableIDAlphabet is the characters used in table IDs (avoid confusing chars)
	TableIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	maxTableIDAttempts = 32
)

// ErrTableIDExhausted is returned when no unused table ID could be generated
var ErrTableIDExhausted = errors.New("could not allocate a table id")

// Result is the outcome of a command applied at a table
type Result struct {
	Game          *model.Game
	Notifications []model.Notification
	Foul          error
}

// Controller hosts one game per table. It loads the table's current game,
// runs a single engine command against it and stores the new value.
// Commands at the same table are serialized.
type Controller struct {
	storage storage.Storage
	engine  *game.Engine
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
	locks   *tableLocks
}

// NewController creates a new table Controller
func NewController(
	storage storage.Storage,
	engine *game.Engine,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		engine:  engine,
		clock:   clock,
		random:  random,
		logger:  logger,
		locks:   newTableLocks(),
	}
}

// CreateTable opens a new table with an empty roster and a full rack
func (c *Controller) CreateTable(ctx context.Context) (*model.Game, error) {
	id, err := c.newTableID(ctx)
	if err != nil {
		return nil, err
	}

	g := model.NewGame(id, c.clock.Now())
	if err := c.storage.SaveTable(ctx, g); err != nil {
		c.logger.Error("failed to save table",
			slog.String("table_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("table created", slog.String("table_id", string(id)))

	return g, nil
}

func (c *Controller) newTableID(ctx context.Context) (model.TableID, error) {
	for range maxTableIDAttempts {
		id := model.TableID(c.random.String(TableIDLength, TableIDAlphabet))
		if id == "" {
			continue
		}
		exists, err := c.storage.TableExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", ErrTableIDExhausted
}

// GetTable retrieves the current game at a table
func (c *Controller) GetTable(ctx context.Context, id model.TableID) (*model.Game, error) {
	return c.storage.GetTable(ctx, id)
}

// ListTables returns the IDs of all open tables
func (c *Controller) ListTables(ctx context.Context) ([]model.TableID, error) {
	return c.storage.ListTables(ctx)
}

// DeleteTable closes a table and discards its game
func (c *Controller) DeleteTable(ctx context.Context, id model.TableID) error {
	unlock := c.locks.lock(id)
	defer unlock()

	exists, err := c.storage.TableExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrTableNotFound
	}

	if err := c.storage.DeleteTable(ctx, id); err != nil {
		return err
	}
	c.locks.forget(id)

	c.logger.Info("table deleted", slog.String("table_id", string(id)))
	return nil
}

// History returns the table's event log in the order events happened
func (c *Controller) History(ctx context.Context, id model.TableID) ([]model.HistoryEvent, error) {
	g, err := c.storage.GetTable(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.History, nil
}

// AvailableBallsCount returns the number of undealt balls at a table
func (c *Controller) AvailableBallsCount(ctx context.Context, id model.TableID) (int, error) {
	g, err := c.storage.GetTable(ctx, id)
	if err != nil {
		return 0, err
	}
	return c.engine.AvailableBallsCount(g), nil
}

// AddPlayer seats a new player at the table
func (c *Controller) AddPlayer(ctx context.Context, id model.TableID, name string) (Result, error) {
	return c.apply(ctx, id, "add_player", func(g *model.Game) (game.Outcome, error) {
		return c.engine.CreatePlayer(g, name)
	})
}

// RemovePlayer takes a player out of the roster before the game starts
func (c *Controller) RemovePlayer(ctx context.Context, id model.TableID, playerID model.PlayerID) (Result, error) {
	return c.apply(ctx, id, "remove_player", func(g *model.Game) (game.Outcome, error) {
		return c.engine.RemovePlayer(g, playerID)
	})
}

// StartGame deals the rack and starts play
func (c *Controller) StartGame(ctx context.Context, id model.TableID) (Result, error) {
	return c.apply(ctx, id, "start_game", c.engine.StartGame)
}

// PocketBall records a ball going down at the table
func (c *Controller) PocketBall(ctx context.Context, id model.TableID, ball int) (Result, error) {
	return c.apply(ctx, id, "pocket_ball", func(g *model.Game) (game.Outcome, error) {
		return c.engine.PocketBall(g, ball)
	})
}

// ResetGame clears the table for a new game with the same roster
func (c *Controller) ResetGame(ctx context.Context, id model.TableID) (Result, error) {
	return c.apply(ctx, id, "reset_game", c.engine.ResetGame)
}

// apply runs one engine command under the table lock and stores the result.
// Rejected commands return their notifications alongside the error.
func (c *Controller) apply(
	ctx context.Context,
	id model.TableID,
	command string,
	fn func(*model.Game) (game.Outcome, error),
) (Result, error) {
	unlock := c.locks.lock(id)
	defer unlock()

	current, err := c.storage.GetTable(ctx, id)
	if err != nil {
		return Result{}, err
	}

	out, err := fn(current)
	result := Result{Game: out.Game, Notifications: out.Notifications, Foul: out.Foul}
	if err != nil {
		c.logger.Info("command rejected",
			slog.String("table_id", string(id)),
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		return result, err
	}

	// Unchanged value means the command was a no-op
	if out.Game == current {
		return result, nil
	}

	if err := c.storage.SaveTable(ctx, out.Game); err != nil {
		c.logger.Error("failed to save table",
			slog.String("table_id", string(id)),
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		return Result{}, err
	}

	return result, nil
}

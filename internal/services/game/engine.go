package game

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/kellypool/internal/dependencies/clock"
	"github.com/mcoot/kellypool/internal/dependencies/random"
	"github.com/mcoot/kellypool/internal/model"
	"github.com/mcoot/kellypool/internal/services/scoring"
)

const (
	// PlayerIDLength is the length of generated player IDs
	PlayerIDLength = 9
	// PlayerIDAlphabet is the characters used in player IDs
	PlayerIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	maxPlayerIDAttempts = 16
)

// Outcome is the result of an engine command: the new game value and the
// notifications the presentation layer should show.
type Outcome struct {
	Game          *model.Game
	Notifications []model.Notification
	// Foul is set when the command was accepted but penalised the shooter
	Foul error
}

// Engine implements the Kelly Pool rules as a pure state machine.
// Commands never modify the game passed in; they return a new value.
// The engine holds no locks, so callers must serialize commands per game.
type Engine struct {
	scoring *scoring.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewEngine creates a new Engine
func NewEngine(
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		scoring: scoringService,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// transition accumulates changes to a cloned game during one command
type transition struct {
	game  *model.Game
	now   time.Time
	notes []model.Notification
	foul  error
}

func (e *Engine) begin(g *model.Game) *transition {
	now := e.clock.Now()
	next := g.Clone()
	next.UpdatedAt = now
	return &transition{game: next, now: now}
}

func (t *transition) record(playerName, action string, ball *int) {
	t.game.History = append(t.game.History, model.HistoryEvent{
		Timestamp:  t.now,
		PlayerName: playerName,
		Action:     action,
		BallNumber: ball,
	})
}

func (t *transition) notify(n model.Notification) {
	t.notes = append(t.notes, n)
}

func (t *transition) outcome() Outcome {
	return Outcome{Game: t.game, Notifications: t.notes, Foul: t.foul}
}

// reject leaves the game untouched and reports the failure
func reject(g *model.Game, err error, message string) (Outcome, error) {
	return Outcome{
		Game:          g,
		Notifications: []model.Notification{model.Failure(message)},
	}, err
}

// CreatePlayer seats a new player at the end of the roster
func (e *Engine) CreatePlayer(g *model.Game, name string) (Outcome, error) {
	if g.GameStarted {
		return reject(g, model.ErrGameAlreadyStarted, "Cannot add players once the game has started")
	}
	if len(g.Players) >= model.MaxPlayers {
		return reject(g, model.ErrRosterFull, fmt.Sprintf("Maximum %d players allowed", model.MaxPlayers))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return reject(g, model.ErrEmptyName, "Player name cannot be empty")
	}
	if g.HasPlayerNamed(name) {
		return reject(g, model.ErrDuplicateName, "Player name already exists")
	}

	id, err := e.newPlayerID(g)
	if err != nil {
		return reject(g, err, "Could not seat another player")
	}

	t := e.begin(g)
	t.game.Players = append(t.game.Players, model.Player{
		ID:       id,
		Name:     name,
		Balls:    []int{},
		Score:    0,
		IsActive: true,
	})
	t.record(name, model.ActionJoined, nil)
	t.notify(model.Success(fmt.Sprintf("%s added to the game", name)))

	e.logger.Debug("player created",
		slog.String("table_id", string(g.ID)),
		slog.String("player_id", string(id)),
		slog.Int("player_count", len(t.game.Players)),
	)

	return t.outcome(), nil
}

func (e *Engine) newPlayerID(g *model.Game) (model.PlayerID, error) {
	for range maxPlayerIDAttempts {
		id := model.PlayerID(e.random.String(PlayerIDLength, PlayerIDAlphabet))
		if id != "" && g.PlayerIndex(id) < 0 {
			return id, nil
		}
	}
	return "", model.ErrPlayerIDExhausted
}

// RemovePlayer takes a player out of the roster before the game starts.
// Removing an unknown player is a silent no-op.
func (e *Engine) RemovePlayer(g *model.Game, id model.PlayerID) (Outcome, error) {
	if g.GameStarted {
		return reject(g, model.ErrRemoveAfterStart, "Cannot remove players once the game has started")
	}

	idx := g.PlayerIndex(id)
	if idx < 0 {
		e.logger.Debug("remove ignored, player not seated",
			slog.String("table_id", string(g.ID)),
			slog.String("player_id", string(id)),
		)
		return Outcome{Game: g}, nil
	}

	name := g.Players[idx].Name
	t := e.begin(g)
	t.game.Players = slices.Delete(t.game.Players, idx, idx+1)
	t.record(name, model.ActionLeft, nil)
	t.notify(model.Info(fmt.Sprintf("%s removed from the game", name)))

	e.logger.Debug("player removed",
		slog.String("table_id", string(g.ID)),
		slog.String("player_id", string(id)),
	)

	return t.outcome(), nil
}

// StartGame deals the rack and opens play
func (e *Engine) StartGame(g *model.Game) (Outcome, error) {
	if len(g.Players) < model.MinPlayers {
		return reject(g, model.ErrInsufficientPlayers, fmt.Sprintf("Need at least %d players to start", model.MinPlayers))
	}
	if g.GameStarted {
		return reject(g, model.ErrAlreadyStarted, "Game already started")
	}

	t := e.begin(g)
	e.deal(t)
	t.game.GameStarted = true
	t.game.CurrentTurn = 0
	t.record(model.ActorGame, model.ActionStarted, nil)
	t.notify(model.Success("Game started!"))

	e.logger.Info("game started",
		slog.String("table_id", string(g.ID)),
		slog.Int("player_count", len(t.game.Players)),
	)

	return t.outcome(), nil
}

// deal shuffles the rack and splits it as evenly as possible in roster order.
// The first len(rack) mod N players receive one extra ball.
func (e *Engine) deal(t *transition) {
	rack := t.game.AvailableBalls
	perm := e.random.Perm(len(rack))
	if !isPermutation(perm, len(rack)) {
		e.logger.Warn("ignoring malformed permutation", slog.Int("length", len(perm)))
		perm = make([]int, len(rack))
		for i := range perm {
			perm[i] = i
		}
	}

	shuffled := make([]int, len(rack))
	for i, p := range perm {
		shuffled[i] = rack[p]
	}

	players := t.game.Players
	perPlayer := len(shuffled) / len(players)
	extra := len(shuffled) % len(players)

	next := 0
	for i := range players {
		count := perPlayer
		if i < extra {
			count++
		}
		players[i].Balls = slices.Clone(shuffled[next : next+count])
		next += count
	}

	t.game.AvailableBalls = []int{}
	t.record(model.ActorSystem, model.ActionDealt, nil)
	for _, p := range players {
		t.notify(model.Info(fmt.Sprintf("%s got balls: %s", p.Name, joinBalls(p.Balls))))
	}
}

func isPermutation(perm []int, n int) bool {
	if len(perm) != n {
		return false
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

func joinBalls(balls []int) string {
	parts := make([]string, len(balls))
	for i, b := range balls {
		parts[i] = strconv.Itoa(b)
	}
	return strings.Join(parts, ", ")
}

// ResetGame starts a new lifecycle with the same roster.
// History is replaced by a single reset event.
func (e *Engine) ResetGame(g *model.Game) (Outcome, error) {
	t := e.begin(g)
	for i := range t.game.Players {
		p := &t.game.Players[i]
		p.Balls = []int{}
		p.Score = 0
		p.IsActive = true
	}
	t.game.AvailableBalls = model.FullRack()
	t.game.GameStarted = false
	t.game.GameFinished = false
	t.game.CurrentTurn = 0
	t.game.WinnerID = ""
	t.game.History = []model.HistoryEvent{{
		Timestamp:  t.now,
		PlayerName: model.ActorGame,
		Action:     model.ActionReset,
	}}
	t.notify(model.Info("Game reset"))

	e.logger.Info("game reset", slog.String("table_id", string(g.ID)))

	return t.outcome(), nil
}

// AvailableBallsCount returns the number of undealt balls
func (e *Engine) AvailableBallsCount(g *model.Game) int {
	return g.AvailableBallsCount()
}

// advanceTurn moves the turn to the next active player in roster order.
// Does nothing once the game is finished or nobody is active.
func (e *Engine) advanceTurn(t *transition) {
	g := t.game
	if g.GameFinished {
		return
	}
	if g.ActiveCount() == 0 {
		e.logger.Debug("turn not advanced, no active players", slog.String("table_id", string(g.ID)))
		return
	}

	next := g.CurrentTurn
	for {
		next = (next + 1) % len(g.Players)
		if g.Players[next].IsActive {
			break
		}
	}
	g.CurrentTurn = next
}

// declareWinner finishes the game in favour of the player at idx
func (e *Engine) declareWinner(t *transition, idx int, action string, ball *int) {
	winner := t.game.Players[idx]
	t.game.GameFinished = true
	t.game.WinnerID = winner.ID
	t.record(winner.Name, action, ball)
	t.notify(model.Success(fmt.Sprintf("%s wins the game!", winner.Name)))

	e.logger.Info("game finished",
		slog.String("table_id", string(t.game.ID)),
		slog.String("winner_id", string(winner.ID)),
		slog.String("reason", action),
	)
}

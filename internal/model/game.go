package model

import (
	"slices"
	"time"
)

// TableID identifies a table hosting one game
type TableID string

const (
	// MaxPlayers is the roster capacity, one ball per player at most
	MaxPlayers = BallCount
	// MinPlayers is the smallest roster that can start a game
	MinPlayers = 2
)

// Game is the complete state of a Kelly Pool game at one table.
// Engine commands treat a Game as an immutable value and return a new one.
type Game struct {
	ID             TableID        `json:"id"`
	Players        []Player       `json:"players"` // Roster order is turn order
	AvailableBalls []int          `json:"available_balls"`
	GameStarted    bool           `json:"game_started"`
	GameFinished   bool           `json:"game_finished"`
	CurrentTurn    int            `json:"current_turn"`
	WinnerID       PlayerID       `json:"winner_id,omitempty"` // Empty until the game finishes
	History        []HistoryEvent `json:"history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGame creates a fresh game with a full rack and an empty roster
func NewGame(id TableID, now time.Time) *Game {
	return &Game{
		ID:             id,
		Players:        []Player{},
		AvailableBalls: FullRack(),
		History:        []HistoryEvent{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	c := *g
	c.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		c.Players[i] = p.Clone()
	}
	c.AvailableBalls = slices.Clone(g.AvailableBalls)
	if c.AvailableBalls == nil {
		c.AvailableBalls = []int{}
	}
	c.History = slices.Clone(g.History)
	if c.History == nil {
		c.History = []HistoryEvent{}
	}
	return &c
}

// InProgress returns true between dealing and the winner being decided
func (g *Game) InProgress() bool {
	return g.GameStarted && !g.GameFinished
}

// AvailableBallsCount returns the number of undealt balls
func (g *Game) AvailableBallsCount() int {
	return len(g.AvailableBalls)
}

// PlayerIndex returns the roster index of the player, or -1 if not found
func (g *Game) PlayerIndex(id PlayerID) int {
	return slices.IndexFunc(g.Players, func(p Player) bool { return p.ID == id })
}

// GetPlayer returns the player with the given ID, or nil if not found
func (g *Game) GetPlayer(id PlayerID) *Player {
	if i := g.PlayerIndex(id); i >= 0 {
		return &g.Players[i]
	}
	return nil
}

// HasPlayerNamed returns true if a player with exactly this name is seated
func (g *Game) HasPlayerNamed(name string) bool {
	return slices.ContainsFunc(g.Players, func(p Player) bool { return p.Name == name })
}

// CurrentPlayer returns the player whose turn it is, or nil if the roster is empty
func (g *Game) CurrentPlayer() *Player {
	if g.CurrentTurn < 0 || g.CurrentTurn >= len(g.Players) {
		return nil
	}
	return &g.Players[g.CurrentTurn]
}

// Winner returns the winning player, or nil if the game has no winner yet
func (g *Game) Winner() *Player {
	if g.WinnerID == "" {
		return nil
	}
	return g.GetPlayer(g.WinnerID)
}

// ActiveCount returns the number of players still taking turns
func (g *Game) ActiveCount() int {
	count := 0
	for _, p := range g.Players {
		if p.IsActive {
			count++
		}
	}
	return count
}

// ActiveOwner returns the index of the active player holding the ball, or -1
func (g *Game) ActiveOwner(ball int) int {
	return slices.IndexFunc(g.Players, func(p Player) bool { return p.IsActive && p.HasBall(ball) })
}

// PocketedBalls returns the balls no longer in play, in ascending order.
// Scratched players keep their hands, so their balls are not pocketed.
func (g *Game) PocketedBalls() []int {
	inPlay := make(map[int]bool, BallCount)
	for _, b := range g.AvailableBalls {
		inPlay[b] = true
	}
	for _, p := range g.Players {
		for _, b := range p.Balls {
			inPlay[b] = true
		}
	}
	pocketed := []int{}
	for _, b := range FullRack() {
		if !inPlay[b] {
			pocketed = append(pocketed, b)
		}
	}
	return pocketed
}

package model

import "slices"

// PlayerID uniquely identifies a player at a table
type PlayerID string

// MaxNameLength is the longest player name accepted at the API boundary
const MaxNameLength = 20

// Player represents a participant in a Kelly Pool game
type Player struct {
	ID       PlayerID `json:"id"`
	Name     string   `json:"name"`
	Balls    []int    `json:"balls"`     // Dealt balls still on the table, in deal order
	Score    int      `json:"score"`
	IsActive bool     `json:"is_active"` // false once finished or scratched
}

// HasBall returns true if the ball is in the player's hand
func (p *Player) HasBall(ball int) bool {
	return slices.Contains(p.Balls, ball)
}

// HoldsOnly returns true if the ball is the only one left in the player's hand
func (p *Player) HoldsOnly(ball int) bool {
	return len(p.Balls) == 1 && p.Balls[0] == ball
}

// Clone returns a deep copy of the player
func (p Player) Clone() Player {
	p.Balls = slices.Clone(p.Balls)
	if p.Balls == nil {
		p.Balls = []int{}
	}
	return p
}

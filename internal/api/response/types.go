package response

import (
	"time"

	"github.com/mcoot/kellypool/internal/model"
)

// Player represents a seated player in API responses
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Balls    []int  `json:"balls"`
	Score    int    `json:"score"`
	IsActive bool   `json:"is_active"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	balls := p.Balls
	if balls == nil {
		balls = []int{}
	}
	return Player{
		ID:       string(p.ID),
		Name:     p.Name,
		Balls:    balls,
		Score:    p.Score,
		IsActive: p.IsActive,
	}
}

// Table represents the game at a table
type Table struct {
	ID              string    `json:"id"`
	Players         []Player  `json:"players"`
	AvailableBalls  []int     `json:"available_balls"`
	PocketedBalls   []int     `json:"pocketed_balls"`
	GameStarted     bool      `json:"game_started"`
	GameFinished    bool      `json:"game_finished"`
	CurrentTurn     int       `json:"current_turn"`
	CurrentPlayerID *string   `json:"current_player_id,omitempty"`
	WinnerID        *string   `json:"winner_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableFromModel converts a model.Game to a response Table
func TableFromModel(g *model.Game) Table {
	players := make([]Player, len(g.Players))
	for i := range g.Players {
		players[i] = PlayerFromModel(&g.Players[i])
	}

	available := g.AvailableBalls
	if available == nil {
		available = []int{}
	}

	resp := Table{
		ID:             string(g.ID),
		Players:        players,
		AvailableBalls: available,
		PocketedBalls:  g.PocketedBalls(),
		GameStarted:    g.GameStarted,
		GameFinished:   g.GameFinished,
		CurrentTurn:    g.CurrentTurn,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}

	if g.InProgress() {
		if p := g.CurrentPlayer(); p != nil {
			id := string(p.ID)
			resp.CurrentPlayerID = &id
		}
	}
	if g.WinnerID != "" {
		id := string(g.WinnerID)
		resp.WinnerID = &id
	}

	return resp
}

// TableList lists open table IDs
type TableList struct {
	Tables []string `json:"tables"`
}

// TableListFromModel converts table IDs to a TableList
func TableListFromModel(ids []model.TableID) TableList {
	tables := make([]string, len(ids))
	for i, id := range ids {
		tables[i] = string(id)
	}
	return TableList{Tables: tables}
}

// Notification is a message for the user produced by a command
type Notification struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// NotificationsFromModel converts notifications, keeping nil as nil
func NotificationsFromModel(notes []model.Notification) []Notification {
	if notes == nil {
		return nil
	}
	result := make([]Notification, len(notes))
	for i, n := range notes {
		result[i] = Notification{Severity: string(n.Severity), Message: n.Message}
	}
	return result
}

// HistoryEvent is one entry in a table's history
type HistoryEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	PlayerName string    `json:"player_name"`
	Action     string    `json:"action"`
	BallNumber *int      `json:"ball_number,omitempty"`
}

// History is the response for the history endpoint
type History struct {
	TableID string         `json:"table_id"`
	Events  []HistoryEvent `json:"events"`
}

// HistoryFromModel converts a table's history events
func HistoryFromModel(id model.TableID, events []model.HistoryEvent) History {
	result := make([]HistoryEvent, len(events))
	for i, e := range events {
		result[i] = HistoryEvent{
			Timestamp:  e.Timestamp,
			PlayerName: e.PlayerName,
			Action:     e.Action,
			BallNumber: e.BallNumber,
		}
	}
	return History{TableID: string(id), Events: result}
}

// CommandResult is the response for commands applied at a table
type CommandResult struct {
	Table         Table          `json:"table"`
	Notifications []Notification `json:"notifications"`
	Foul          string         `json:"foul,omitempty"`
}

// CommandResultFromModel builds a CommandResult from a command's outcome
func CommandResultFromModel(g *model.Game, notes []model.Notification, foul error) CommandResult {
	resp := CommandResult{
		Table:         TableFromModel(g),
		Notifications: NotificationsFromModel(notes),
	}
	if resp.Notifications == nil {
		resp.Notifications = []Notification{}
	}
	if foul != nil {
		resp.Foul = foul.Error()
	}
	return resp
}

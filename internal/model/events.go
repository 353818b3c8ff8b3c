package model

import "time"

// Actor names used for events not attributed to a player
const (
	ActorGame   = "Game"
	ActorSystem = "System"
)

// History actions
const (
	ActionJoined       = "joined the game"
	ActionLeft         = "left the game"
	ActionStarted      = "started"
	ActionDealt        = "assigned balls to players"
	ActionPocketed     = "pocketed ball"
	ActionWon          = "won the game"
	ActionWonEightBall = "won by pocketing the 8-ball"
	ActionScratched    = "scratched by pocketing the 8-ball early"
	ActionReset        = "reset"
)

// HistoryEvent records a single thing that happened at the table
type HistoryEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	PlayerName string    `json:"player_name"`
	Action     string    `json:"action"`
	BallNumber *int      `json:"ball_number,omitempty"`
}

// FinishedAction returns the history action for finishing in the given place label
func FinishedAction(place string) string {
	return "finished in " + place + " place"
}

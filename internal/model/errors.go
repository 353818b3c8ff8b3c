package model

import (
	"errors"
	"fmt"
)

// Error kinds. Every rule violation wraps exactly one of these.
var (
	ErrInvalidRoster       = errors.New("invalid roster")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrInvalidGameState    = errors.New("invalid game state")
	ErrIllegalPocket       = errors.New("illegal pocket")
)

// Roster errors
var (
	ErrGameAlreadyStarted = fmt.Errorf("%w: cannot add once started", ErrInvalidRoster)
	ErrRemoveAfterStart   = fmt.Errorf("%w: cannot remove once started", ErrInvalidRoster)
	ErrRosterFull         = fmt.Errorf("%w: maximum players", ErrInvalidRoster)
	ErrEmptyName          = fmt.Errorf("%w: name cannot be empty", ErrInvalidRoster)
	ErrDuplicateName      = fmt.Errorf("%w: name already exists", ErrInvalidRoster)
	ErrPlayerIDExhausted  = fmt.Errorf("%w: could not allocate a player id", ErrInvalidRoster)
)

// Game state errors
var (
	ErrAlreadyStarted    = fmt.Errorf("%w: game already started", ErrInvalidGameState)
	ErrGameNotInProgress = fmt.Errorf("%w: game not in progress", ErrInvalidGameState)
	ErrInvalidBall       = fmt.Errorf("%w: invalid ball", ErrInvalidGameState)
)

// Host errors
var (
	ErrTableNotFound = errors.New("table not found")
)

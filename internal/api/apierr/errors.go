package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/kellypool/internal/api/response"
	"github.com/mcoot/kellypool/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError along with any notifications the
// rejected command produced
type ErrorResponse struct {
	Error         APIError                `json:"error"`
	Notifications []response.Notification `json:"notifications,omitempty"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeTableNotFound       = "TABLE_NOT_FOUND"
	CodeInvalidBall         = "INVALID_BALL"
	CodeEmptyName           = "EMPTY_NAME"
	CodeDuplicateName       = "DUPLICATE_NAME"
	CodeRosterFull          = "ROSTER_FULL"
	CodeRosterLocked        = "ROSTER_LOCKED"
	CodeInvalidRoster       = "INVALID_ROSTER"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeGameAlreadyStarted  = "GAME_ALREADY_STARTED"
	CodeGameNotInProgress   = "GAME_NOT_IN_PROGRESS"
	CodeInvalidGameState    = "INVALID_GAME_STATE"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	WriteCommandError(w, err, nil)
}

// WriteCommandError writes an error response carrying the notifications of a
// rejected command
func WriteCommandError(w http.ResponseWriter, err error, notifications []model.Notification) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:         he.apiError,
		Notifications: response.NotificationsFromModel(notifications),
	})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Specific errors first, they wrap the broader kinds below
	switch {
	case errors.Is(err, model.ErrTableNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTableNotFound, "Table not found"}}
	case errors.Is(err, model.ErrInvalidBall):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBall, "Ball must be between 1 and 15"}}
	case errors.Is(err, model.ErrEmptyName):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyName, "Player name cannot be empty"}}
	case errors.Is(err, model.ErrDuplicateName):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateName, "Player name already exists"}}
	case errors.Is(err, model.ErrRosterFull):
		return &httpError{http.StatusConflict, APIError{CodeRosterFull, "Maximum players reached"}}
	case errors.Is(err, model.ErrGameAlreadyStarted), errors.Is(err, model.ErrRemoveAfterStart):
		return &httpError{http.StatusConflict, APIError{CodeRosterLocked, "Roster cannot change once the game has started"}}
	case errors.Is(err, model.ErrAlreadyStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameAlreadyStarted, "Game already started"}}
	case errors.Is(err, model.ErrGameNotInProgress):
		return &httpError{http.StatusConflict, APIError{CodeGameNotInProgress, "Game not in progress"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "Not enough players to start"}}
	case errors.Is(err, model.ErrInvalidRoster):
		return &httpError{http.StatusConflict, APIError{CodeInvalidRoster, "Roster change not allowed"}}
	case errors.Is(err, model.ErrInvalidGameState):
		return &httpError{http.StatusConflict, APIError{CodeInvalidGameState, "Command not allowed in the current game state"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

package request

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/kellypool/internal/model"
)

// AddPlayerRequest is the request body for seating a player
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// Validate checks the name length; emptiness and uniqueness are game rules
func (r AddPlayerRequest) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(r.Name)) > model.MaxNameLength {
		return fmt.Errorf("name must be at most %d characters", model.MaxNameLength)
	}
	return nil
}

// PocketRequest is the request body for pocketing a ball
type PocketRequest struct {
	Ball *int `json:"ball"`
}

// Validate checks a ball number was supplied
func (r PocketRequest) Validate() error {
	if r.Ball == nil {
		return errors.New("ball is required")
	}
	return nil
}

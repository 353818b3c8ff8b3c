package handler

import (
	"net/http"

	"github.com/mcoot/kellypool/internal/api/apierr"
	"github.com/mcoot/kellypool/internal/model"
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// WriteCommandError writes an error response for a rejected command
func WriteCommandError(w http.ResponseWriter, err error, notifications []model.Notification) {
	apierr.WriteCommandError(w, err, notifications)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

package utils

import (
	"encoding/json"
	"net/http"

	"github.com/fraudlens/fraudlens/internal/pkg/errors"
)

// ErrorResponse is the wire shape of every failed request. Error carries the
// human message, Code the machine-readable category.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// MessageResponse is the wire shape of bodyless acknowledgements
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteMessage writes a simple acknowledgement body
func WriteMessage(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, MessageResponse{Message: message})
}

// WriteError writes an error JSON response from an AppError. Internal causes
// never reach the body; they are for the operational log only.
func WriteError(w http.ResponseWriter, err *errors.AppError) error {
	return WriteJSON(w, err.StatusCode, ErrorResponse{
		Error:   err.Message,
		Code:    err.Code,
		Details: err.Details,
	})
}

// WriteAppError is WriteError for a plain error value
func WriteAppError(w http.ResponseWriter, err error) error {
	return WriteError(w, errors.AsAppError(err))
}

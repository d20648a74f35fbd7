package handlers

import (
	"net/http"

	"agent-relay-api/internal/services"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps a relay failure to its HTTP status. Validation failures
// are the caller's fault; every other variant collapses into a generic 500,
// preserving the coarse external contract while the internal kinds stay distinct.
func statusForError(err error) int {
	if services.IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

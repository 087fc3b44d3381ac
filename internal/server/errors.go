// Package server provides the HTTP boundary for the outreach agent: the
// browser form, the session endpoints, and the research/compose/send
// orchestration.
package server

import (
	"fmt"
	"net/http"
)

// ErrSessionNotFound indicates the session ID is unknown.
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotAuthorized indicates Gmail sending has not been authorized yet.
type ErrNotAuthorized struct{}

func (e *ErrNotAuthorized) Error() string {
	return "gmail sending is not authorized: run the authorize command first"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrSessionNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrNotAuthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

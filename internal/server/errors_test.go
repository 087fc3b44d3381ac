package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"session not found", &ErrSessionNotFound{ID: "abc"}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "to", Message: "required"}, http.StatusBadRequest},
		{"not authorized", &ErrNotAuthorized{}, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "session not found: abc", (&ErrSessionNotFound{ID: "abc"}).Error())
	assert.Contains(t, (&ErrValidation{Field: "to", Message: "required"}).Error(), "to")
	assert.Contains(t, (&ErrNotAuthorized{}).Error(), "authorize")
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSubjectHeader(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantSubject string
		wantBody    string
	}{
		{
			"subject line present",
			"Subject: Hello\n\nHi team,\n\nBest, Me",
			"Hello",
			"Hi team,\n\nBest, Me",
		},
		{
			"no subject line",
			"Hi team,\n\nBest, Me",
			"",
			"Hi team,\n\nBest, Me",
		},
		{
			"leading whitespace tolerated",
			"\n  Subject: Quick question\nBody",
			"Quick question",
			"Body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := splitSubjectHeader(tt.in)
			assert.Equal(t, tt.wantSubject, subject)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"serve", "research", "compose", "send", "authorize"} {
		assert.True(t, names[want], "command %s not registered", want)
	}
}

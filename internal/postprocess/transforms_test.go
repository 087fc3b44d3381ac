package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripPreamble(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"cold email preamble",
			"Here is a cold email for you:\nHi team,",
			"Hi team,",
		},
		{
			"below is preamble",
			"Below is the personalized email you requested:\nHi team,",
			"Hi team,",
		},
		{
			"generated preamble",
			"I have generated the following email:\nHi team,",
			"Hi team,",
		},
		{
			"based on preamble",
			"Based on the provided information:\nHi team,",
			"Hi team,",
		},
		{
			"leading here line",
			"Here you go:\nHi team,",
			"Hi team,",
		},
		{
			"clean text untouched",
			"Hi team,\n\nI admire your work.",
			"Hi team,\n\nI admire your work.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripPreamble(tt.in))
		})
	}
}

func TestCollapseBlankLines(t *testing.T) {
	assert.Equal(t, "a\n\nb", CollapseBlankLines("a\n\n\nb"))
	assert.Equal(t, "a\n\nb", CollapseBlankLines("a\n\n\n\n\nb"))
	// Whitespace-only blank lines count as blank
	assert.Equal(t, "a\n\nb", CollapseBlankLines("a\n  \n\t\nb"))
	// Double breaks are left alone
	assert.Equal(t, "a\n\nb", CollapseBlankLines("a\n\nb"))
}

func TestStripBodyArtifacts(t *testing.T) {
	in := "EMAIL BODY: Hi team,\nSubject: leftover subject\nEmail: \nI admire your work."
	got := StripBodyArtifacts(in)
	assert.NotContains(t, got, "EMAIL BODY:")
	assert.NotContains(t, got, "leftover subject")
	assert.NotContains(t, got, "Email:")
	assert.Contains(t, got, "Hi team,")
	assert.Contains(t, got, "I admire your work.")
}

func TestReflowParagraphs(t *testing.T) {
	in := "First  paragraph\nwith a wrapped line.\n\n\tSecond   paragraph.\n\n\n\nThird."
	want := "First paragraph with a wrapped line.\n\nSecond paragraph.\n\nThird."
	assert.Equal(t, want, ReflowParagraphs(in))
}

func TestReflowParagraphs_DropsEmpty(t *testing.T) {
	assert.Equal(t, "a\n\nb", ReflowParagraphs("a\n\n   \n\nb"))
}

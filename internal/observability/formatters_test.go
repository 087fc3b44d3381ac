package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/outreach-agent/internal/scrape"
)

func TestPrintResearch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResearch("Acme", "https://acme.com", scrape.PageFields{
		Title:       "Acme — robots",
		Description: "Acme builds robots",
	}, []string{"Jane Doe", "John Roe"})

	out := buf.String()
	assert.Contains(t, out, "Research: Acme")
	assert.Contains(t, out, "https://acme.com")
	assert.Contains(t, out, "Jane Doe, John Roe")
}

func TestPrintResearch_NoWebsiteNoFounders(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResearch("Acme", "", scrape.PageFields{}, nil)

	out := buf.String()
	assert.Contains(t, out, "Website: not found")
	assert.Contains(t, out, "Founders: none identified")
}

func TestPrintResearch_TruncatesFounderList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	names := []string{"A B", "C D", "E F", "G H", "I J", "K L", "M N"}
	p.PrintResearch("Acme", "https://acme.com", scrape.PageFields{}, names)

	assert.Contains(t, buf.String(), "(+2 more)")
}

func TestPrintEmail(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEmail("Hello", "Hi team,\n\nBest, Me")

	out := buf.String()
	assert.Contains(t, out, "Email Draft")
	assert.Contains(t, out, "Subject: Hello")
	// Long lines are truncated to the box width
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 60)
	}
}

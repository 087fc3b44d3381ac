// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/outreach-agent/internal/scrape"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResearch prints a research summary: website, page fields, founders.
func (p *Printer) PrintResearch(companyName, websiteURL string, fields scrape.PageFields, founderNames []string) {
	var b strings.Builder

	if websiteURL != "" {
		fmt.Fprintf(&b, "Website: %s\n", websiteURL)
	} else {
		b.WriteString("Website: not found\n")
	}
	if fields.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", fields.Title)
	}
	if fields.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", fields.Description)
	}

	if len(founderNames) == 0 {
		b.WriteString("Founders: none identified")
	} else {
		shown := founderNames
		if len(shown) > maxItemsToShow {
			shown = shown[:maxItemsToShow]
		}
		fmt.Fprintf(&b, "Founders: %s", strings.Join(shown, ", "))
		if extra := len(founderNames) - len(shown); extra > 0 {
			fmt.Fprintf(&b, " (+%d more)", extra)
		}
	}

	p.printBox("Research: "+companyName, b.String())
}

// PrintEmail prints the parsed email draft.
func (p *Printer) PrintEmail(subject, body string) {
	content := fmt.Sprintf("Subject: %s\n\n%s", subject, body)
	p.printBox("Email Draft", content)
}

// Package analysis turns scraped page fields into a narrative company
// analysis via the hosted model.
package analysis

import (
	"context"
	"fmt"

	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/prompts"
	"github.com/jonathan/outreach-agent/internal/scrape"
)

// Analyzer binds a model client so callers can hold one analysis dependency.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an Analyzer backed by client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze runs the package-level Analyze with the bound client.
func (a *Analyzer) Analyze(ctx context.Context, companyName string, fields scrape.PageFields) string {
	return Analyze(ctx, a.client, companyName, fields)
}

// Analyze produces a five-section narrative analysis of the company from the
// extracted page fields. A model failure is converted to a sentinel error
// string rather than an error: the value flows downstream as ordinary
// analysis text and the session continues.
func Analyze(ctx context.Context, client llm.Client, companyName string, fields scrape.PageFields) string {
	content := fmt.Sprintf(`Company: %s
Website Title: %s
Meta Description: %s
About Section: %s
Products/Services: %s
Main Content: %s`,
		companyName,
		fields.Title,
		fields.Description,
		fields.About,
		fields.Products,
		fields.MainContent,
	)

	template := prompts.MustGet("research.json", "analyze-company")
	prompt := prompts.Format(template, map[string]string{
		"Company": companyName,
		"Content": content,
	})

	system := prompts.MustGet("research.json", "analyze-company-system")
	response, err := client.Generate(ctx, prompt, llm.TierStandard, llm.DraftingOptions(system))
	if err != nil {
		return fmt.Sprintf("Error occurred during analysis: %v", err)
	}

	return response
}

// Package founders finds company founder names: unstructured text snippets
// are gathered from search sources, a hosted model extracts full names from
// them, and a deterministic post-filter cleans the output.
package founders

import (
	"context"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/outreach-agent/internal/fetch"
	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/prompts"
	"github.com/jonathan/outreach-agent/internal/search"
)

// NoFoundersSentinel is the literal the extraction prompt asks the model to
// emit when no names are identifiable.
const NoFoundersSentinel = "No founders identified"

// maxResultPages caps how many organic result pages the secondary source
// fetches when no instant answer is available.
const maxResultPages = 2

// PassageSource extracts a short relevant passage from a results page.
type PassageSource interface {
	Passage(ctx context.Context, query string) (string, error)
}

// InstantSource provides instant-answer text and organic results.
type InstantSource interface {
	search.Searcher
	InstantAnswer(ctx context.Context, query string) (string, error)
}

// Finder locates founder names for a company.
type Finder struct {
	client    llm.Client
	primary   PassageSource
	secondary InstantSource
	verbose   bool
}

// NewFinder creates a Finder. primary is tried first for passage text,
// secondary when the primary yields nothing.
func NewFinder(client llm.Client, primary PassageSource, secondary InstantSource, verbose bool) *Finder {
	return &Finder{
		client:    client,
		primary:   primary,
		secondary: secondary,
		verbose:   verbose,
	}
}

// Find returns founder name candidates in model-output order. An empty slice
// is a normal outcome ("no founders identified"), never an error: every
// failure along the way degrades to the empty result.
func (f *Finder) Find(ctx context.Context, companyName string) []string {
	query := companyName + " founder"

	passage := f.gatherPassage(ctx, query)
	if passage == "" {
		return nil
	}

	names := f.extractNames(ctx, companyName, passage)
	return FilterNames(names)
}

// gatherPassage tries the primary source, then the secondary source, and
// returns the first non-empty passage of text mentioning the company.
func (f *Finder) gatherPassage(ctx context.Context, query string) string {
	if f.primary != nil {
		passage, err := f.primary.Passage(ctx, query)
		if err == nil && passage != "" {
			return passage
		}
		if err != nil && f.verbose {
			log.Printf("[FOUNDERS] Primary source failed: %v", err)
		}
	}

	if f.secondary == nil {
		return ""
	}

	if answer, err := f.secondary.InstantAnswer(ctx, query); err == nil && answer != "" {
		return answer
	}

	results, err := f.secondary.Search(ctx, query)
	if err != nil {
		if f.verbose {
			log.Printf("[FOUNDERS] Secondary search failed: %v", err)
		}
		return ""
	}

	for i, result := range results {
		if i >= maxResultPages {
			break
		}
		text := firstParagraphs(ctx, result.URL)
		if len(text) > 50 {
			return text
		}
	}

	return ""
}

// firstParagraphs fetches a page and returns its first 5 paragraphs joined
// by spaces, or the empty string on any failure.
func firstParagraphs(ctx context.Context, urlStr string) string {
	result, err := fetch.URL(ctx, urlStr, &fetch.Options{
		Timeout:   fetch.PageTimeout,
		UserAgent: fetch.DefaultUserAgent,
	})
	if err != nil {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		return ""
	}
	doc.Find("script, style").Remove()

	var parts []string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		parts = append(parts, strings.TrimSpace(sel.Text()))
		return len(parts) < 5
	})

	return strings.TrimSpace(strings.Join(parts, " "))
}

// extractNames asks the model for full founder names, one per line. Low
// temperature biases toward deterministic extraction.
func (f *Finder) extractNames(ctx context.Context, companyName string, passage string) []string {
	template := prompts.MustGet("research.json", "extract-founders")
	prompt := prompts.Format(template, map[string]string{
		"Company": companyName,
		"Content": passage,
	})

	system := prompts.MustGet("research.json", "extract-founders-system")
	response, err := f.client.Generate(ctx, prompt, llm.TierLite, llm.ExtractionOptions(system))
	if err != nil {
		if f.verbose {
			log.Printf("[FOUNDERS] Extraction failed: %v", err)
		}
		return nil
	}

	if strings.Contains(response, NoFoundersSentinel) {
		return nil
	}

	return strings.Split(response, "\n")
}

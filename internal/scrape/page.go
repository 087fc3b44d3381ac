// Package scrape extracts a fixed set of labeled text fields from a company
// website for downstream LLM analysis.
package scrape

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/outreach-agent/internal/fetch"
)

// PageFields is the fixed field set extracted from a company page. Fields may
// be empty; the analyzer handles all-empty input.
type PageFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	About       string `json:"about"`
	Products    string `json:"products"`
	MainContent string `json:"main_content"`
}

// Empty reports whether nothing at all was extracted.
func (f PageFields) Empty() bool {
	return f.Title == "" && f.Description == "" && f.About == "" &&
		f.Products == "" && f.MainContent == ""
}

var (
	aboutClassPattern   = regexp.MustCompile(`(?i)about|mission|vision|story`)
	productClassPattern = regexp.MustCompile(`(?i)product|service|solution|feature`)
)

// Summarizer fetches pages and extracts PageFields.
type Summarizer struct {
	// UseBrowser enables a headless browser fallback for pages that render
	// their content client-side.
	UseBrowser bool
	Verbose    bool
}

// ExtractFields fetches the URL and extracts the labeled fields. On fetch
// failure it returns zero-value fields rather than an error: a page that
// cannot be scraped degrades the analysis input, it does not stop the
// session.
func (s *Summarizer) ExtractFields(ctx context.Context, urlStr string) PageFields {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		if s.Verbose {
			log.Printf("[SCRAPE] Fetch failed for %s: %v", urlStr, err)
		}
		return PageFields{}
	}

	fields := ParseFields(result.HTML)
	if s.UseBrowser && fetch.ShouldUseBrowser(fields.MainContent) {
		if html, err := fetch.BrowserSimple(ctx, urlStr, s.Verbose); err == nil {
			fields = ParseFields(html)
		}
	}

	return fields
}

// ParseFields extracts the labeled fields from raw HTML.
func ParseFields(html string) PageFields {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return PageFields{}
	}

	// Non-content markup would pollute every section text below
	doc.Find("script, style, nav, footer, header").Remove()

	var fields PageFields

	fields.Title = strings.TrimSpace(doc.Find("title").First().Text())

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		fields.Description = strings.TrimSpace(desc)
	}

	fields.About = collectSections(doc, aboutClassPattern, 50)
	fields.Products = collectSections(doc, productClassPattern, 30)
	fields.MainContent = collectParagraphs(doc)

	return fields
}

// collectSections concatenates the text of up to 3 section/div elements whose
// class attribute matches the pattern and whose text exceeds minLen.
func collectSections(doc *goquery.Document, pattern *regexp.Regexp, minLen int) string {
	var parts []string
	doc.Find("section, div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, ok := sel.Attr("class")
		if !ok || !pattern.MatchString(class) {
			return true
		}
		text := normalizeSpace(sel.Text())
		if len(text) > minLen {
			parts = append(parts, text)
		}
		return len(parts) < 3
	})
	return strings.Join(parts, " ")
}

// collectParagraphs concatenates up to the first 10 paragraphs longer than 20
// characters.
func collectParagraphs(doc *goquery.Document) string {
	var parts []string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := normalizeSpace(sel.Text())
		if len(text) > 20 {
			parts = append(parts, text)
		}
		return len(parts) < 10
	})
	return strings.Join(parts, " ")
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

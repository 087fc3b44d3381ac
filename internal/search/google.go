package search

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/outreach-agent/internal/fetch"
)

// DefaultGoogleURL is the Google web search endpoint.
const DefaultGoogleURL = "https://www.google.com/search"

// urlPattern matches absolute URLs embedded anywhere in a response body.
var urlPattern = regexp.MustCompile(`https?://[^\s<>"]+`)

// knowledgePanelSelectors are tried in order when looking for a short
// descriptive passage on a results page. Google markup shifts frequently, so
// several generations of selectors are kept.
var knowledgePanelSelectors = []string{
	`[data-attrid="kc:/local:one line description"]`,
	`[data-attrid="description"]`,
	`div[data-md]`,
	".kno-rdesc",
	".kno-desc",
	".LGOjhe",
}

// snippetClassPattern matches the class names Google has used for organic
// result snippets.
var snippetClassPattern = regexp.MustCompile(`(?i)st|s3v9rd|VwiC3b`)

// GoogleScrape fetches Google results pages directly and extracts content
// with best-effort heuristics. It is a fallback source, not an API client.
type GoogleScrape struct {
	// BaseURL overrides the endpoint, used in tests.
	BaseURL string
}

// NewGoogleScrape returns a GoogleScrape against the public endpoint.
func NewGoogleScrape() *GoogleScrape {
	return &GoogleScrape{BaseURL: DefaultGoogleURL}
}

func (g *GoogleScrape) endpoint(query string) string {
	base := g.BaseURL
	if base == "" {
		base = DefaultGoogleURL
	}
	return fmt.Sprintf("%s?q=%s", base, url.QueryEscape(query))
}

// Passage fetches a results page and tries to extract a short passage of
// text relevant to the query, for downstream LLM extraction. Strategies are
// tried in order; the first non-empty match wins:
//  1. knowledge-panel-like elements whose text mentions the query subject,
//  2. organic snippet elements (first 3),
//  3. any block containing both the subject and the word "founder" within
//     length bounds 30-500 chars.
//
// Returns the empty string when nothing matched.
func (g *GoogleScrape) Passage(ctx context.Context, query string) (string, error) {
	result, err := fetch.URL(ctx, g.endpoint(query), nil)
	if err != nil {
		return "", fmt.Errorf("google search failed: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse google response: %w", err)
	}

	subject := strings.ToLower(firstWord(query))

	var content strings.Builder
	for _, selector := range knowledgePanelSelectors {
		doc.Find(selector).Each(func(_ int, el *goquery.Selection) {
			text := strings.TrimSpace(el.Text())
			if len(text) > 20 && strings.Contains(strings.ToLower(text), subject) {
				content.WriteString(text)
				content.WriteString(" ")
			}
		})
	}

	if content.Len() == 0 {
		count := 0
		doc.Find("span, div").EachWithBreak(func(_ int, el *goquery.Selection) bool {
			class, _ := el.Attr("class")
			if class == "" || !snippetClassPattern.MatchString(class) {
				return true
			}
			text := strings.TrimSpace(el.Text())
			if len(text) > 20 {
				content.WriteString(text)
				content.WriteString(" ")
				count++
			}
			return count < 3
		})
	}

	if content.Len() == 0 {
		doc.Find("div, span, p").EachWithBreak(func(_ int, el *goquery.Selection) bool {
			text := strings.TrimSpace(el.Text())
			lower := strings.ToLower(text)
			if strings.Contains(lower, subject) &&
				strings.Contains(lower, "founder") &&
				len(text) > 30 && len(text) < 500 {
				content.WriteString(text)
				content.WriteString(" ")
				return false
			}
			return true
		})
	}

	return strings.TrimSpace(content.String()), nil
}

// ScanLinks fetches a results page and returns every absolute URL found in
// the raw response text, query parameters and fragments stripped. Structured
// parsing of Google results is brittle; a raw link scan is good enough for
// the resolver's last-resort fallback.
func (g *GoogleScrape) ScanLinks(ctx context.Context, query string) ([]string, error) {
	result, err := fetch.URL(ctx, g.endpoint(query)+"&num=10", nil)
	if err != nil {
		return nil, fmt.Errorf("google search failed: %w", err)
	}

	matches := urlPattern.FindAllString(result.HTML, -1)
	links := make([]string, 0, len(matches))
	seen := make(map[string]bool)
	for _, m := range matches {
		cleaned := strings.SplitN(m, "&", 2)[0]
		cleaned = strings.SplitN(cleaned, "#", 2)[0]
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		links = append(links, cleaned)
	}

	return links, nil
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}

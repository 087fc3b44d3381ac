package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/outreach-agent/internal/fetch"
)

// DefaultDuckDuckGoURL is the HTML (non-JS) DuckDuckGo endpoint, which is
// friendlier to scraping than the main site.
const DefaultDuckDuckGoURL = "https://html.duckduckgo.com/html/"

// DuckDuckGo scrapes the HTML DuckDuckGo endpoint.
type DuckDuckGo struct {
	// BaseURL overrides the endpoint, used in tests.
	BaseURL string
}

// NewDuckDuckGo returns a DuckDuckGo searcher against the public endpoint.
func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{BaseURL: DefaultDuckDuckGoURL}
}

func (d *DuckDuckGo) endpoint(query string) string {
	base := d.BaseURL
	if base == "" {
		base = DefaultDuckDuckGoURL
	}
	return fmt.Sprintf("%s?q=%s", base, url.QueryEscape(query))
}

// Search returns organic results parsed from the result list.
func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]Result, error) {
	result, err := fetch.URL(ctx, d.endpoint(query), nil)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo search failed: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse duckduckgo response: %w", err)
	}

	var results []Result
	doc.Find("a.result__a").Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return
		}
		results = append(results, Result{
			Title: strings.TrimSpace(link.Text()),
			URL:   cleanRedirect(href),
		})
	})

	doc.Find(".result__snippet").Each(func(i int, snippet *goquery.Selection) {
		if i < len(results) {
			results[i].Snippet = strings.TrimSpace(snippet.Text())
		}
	})

	return results, nil
}

// InstantAnswer returns the text of the instant answer block if one is
// present, else the empty string.
func (d *DuckDuckGo) InstantAnswer(ctx context.Context, query string) (string, error) {
	result, err := fetch.URL(ctx, d.endpoint(query), nil)
	if err != nil {
		return "", fmt.Errorf("duckduckgo search failed: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse duckduckgo response: %w", err)
	}

	text := strings.TrimSpace(doc.Find("div.zci").First().Text())
	if len(text) > 20 {
		return text, nil
	}
	return "", nil
}

// cleanRedirect unwraps DuckDuckGo's /l/?uddg= redirect links to the target URL.
func cleanRedirect(href string) string {
	if !strings.Contains(href, "uddg=") {
		return href
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

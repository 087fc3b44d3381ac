// Package search provides access to web search engines. The resolver and the
// founder finder consume results through the Searcher interface so scraping
// engines and API-backed engines are interchangeable.
package search

import "context"

// Result is a single search engine result.
type Result struct {
	Title   string
	URL     string
	Snippet string
}

// Searcher returns organic results for a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

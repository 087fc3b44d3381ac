package search

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// CustomSearch uses the Google Programmable Search API. It is preferred over
// scraping when an API key and engine ID are configured.
type CustomSearch struct {
	svc *customsearch.Service
	cx  string
}

// NewCustomSearch creates a CustomSearch client.
func NewCustomSearch(ctx context.Context, apiKey string, cx string) (*CustomSearch, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &CustomSearch{
		svc: svc,
		cx:  cx,
	}, nil
}

// Search returns organic results for a query.
func (c *CustomSearch) Search(_ context.Context, query string) ([]Result, error) {
	resp, err := c.svc.Cse.List().Cx(c.cx).Q(query).Do()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, Result{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}

	return results, nil
}

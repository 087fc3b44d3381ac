package discovery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outreach-agent/internal/search"
)

type fakeSearcher struct {
	results []search.Result
	err     error
	calls   int
}

func (f *fakeSearcher) Search(_ context.Context, _ string) ([]search.Result, error) {
	f.calls++
	return f.results, f.err
}

type fakeScanner struct {
	links   map[string][]string
	queries []string
}

func (f *fakeScanner) ScanLinks(_ context.Context, query string) ([]string, error) {
	f.queries = append(f.queries, query)
	return f.links[query], nil
}

func newTestResolver(searcher search.Searcher, scanner LinkScanner, reachable map[string]bool) (*Resolver, *[]string) {
	var probed []string
	r := NewResolver(searcher, scanner, false)
	r.probe = func(_ context.Context, url string) bool {
		probed = append(probed, url)
		return reachable[url]
	}
	r.sleep = func(time.Duration) {}
	return r, &probed
}

func TestResolve_PatternProbeWins(t *testing.T) {
	searcher := &fakeSearcher{}
	r, probed := newTestResolver(searcher, nil, map[string]bool{
		"https://www.acme.com": true,
	})

	url, err := r.Resolve(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, "https://www.acme.com", url)

	// First success wins without attempting search-engine fallback
	assert.Equal(t, 0, searcher.calls)
	assert.Equal(t, []string{"https://www.acme.com"}, *probed)
}

func TestResolve_PatternOrderIsPriority(t *testing.T) {
	r, probed := newTestResolver(nil, nil, map[string]bool{
		"https://acme.io": true,
	})

	url, err := r.Resolve(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, "https://acme.io", url)

	// Every earlier candidate was probed before the winner
	assert.Equal(t, []string{
		"https://www.acme.com", "https://acme.com",
		"https://www.acme.ai", "https://acme.ai",
		"https://www.acme.io", "https://acme.io",
	}, *probed)
}

func TestResolve_SearchFallback(t *testing.T) {
	searcher := &fakeSearcher{results: []search.Result{
		{URL: "https://www.linkedin.com/company/acme"},
		{URL: "https://acmerobotics.dev"},
	}}
	r, _ := newTestResolver(searcher, nil, map[string]bool{
		"https://acmerobotics.dev": true,
	})

	url, err := r.Resolve(context.Background(), "Acme Robotics")
	require.NoError(t, err)
	assert.Equal(t, "https://acmerobotics.dev", url)
	assert.Equal(t, 1, searcher.calls)
}

func TestResolve_SearchErrorFallsThrough(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("blocked")}
	scanner := &fakeScanner{links: map[string][]string{
		"Acme homepage": {"https://acme.example"},
	}}
	r, _ := newTestResolver(searcher, scanner, map[string]bool{
		"https://acme.example": true,
	})

	url, err := r.Resolve(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example", url)
}

func TestResolve_LinkScanTriesVariantsInOrder(t *testing.T) {
	scanner := &fakeScanner{links: map[string][]string{
		"Acme corporate website": {"https://acme.example"},
	}}
	r, _ := newTestResolver(&fakeSearcher{}, scanner, map[string]bool{
		"https://acme.example": true,
	})

	url, err := r.Resolve(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example", url)
	assert.Equal(t, []string{
		"Acme official site",
		"Acme homepage",
		"Acme corporate website",
	}, scanner.queries)
}

func TestResolve_NotFound(t *testing.T) {
	r, _ := newTestResolver(&fakeSearcher{}, &fakeScanner{}, nil)

	_, err := r.Resolve(context.Background(), "Nonexistent Startup")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Package discovery locates a company's website from its name. Three
// best-effort strategies run in fixed order, stopping at the first success:
// domain-pattern probing, a primary search engine, and a raw link scan over a
// secondary search engine. Exhausting all strategies is a normal outcome, not
// an error condition worth aborting the pipeline for.
package discovery

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jonathan/outreach-agent/internal/fetch"
	"github.com/jonathan/outreach-agent/internal/search"
)

// ErrNotFound is returned when every strategy is exhausted without a
// reachable website.
var ErrNotFound = errors.New("no website found")

// maxSearchResults caps how many primary search results are considered.
const maxSearchResults = 5

// queryVariantDelay is the pause between secondary search query variants, to
// reduce the chance of being blocked. It is not a retry of a failed call.
const queryVariantDelay = time.Second

// LinkScanner produces candidate URLs from a raw results-page scan.
type LinkScanner interface {
	ScanLinks(ctx context.Context, query string) ([]string, error)
}

// Resolver finds a company's website URL.
type Resolver struct {
	searcher search.Searcher
	scanner  LinkScanner
	verbose  bool

	// probe is swappable in tests.
	probe func(ctx context.Context, url string) bool
	// sleep is swappable in tests.
	sleep func(d time.Duration)
}

// NewResolver creates a Resolver. searcher drives the primary search
// fallback; scanner, if non-nil, drives the secondary raw-scan fallback.
func NewResolver(searcher search.Searcher, scanner LinkScanner, verbose bool) *Resolver {
	return &Resolver{
		searcher: searcher,
		scanner:  scanner,
		verbose:  verbose,
		probe: func(ctx context.Context, url string) bool {
			return fetch.Probe(ctx, url, nil)
		},
		sleep: time.Sleep,
	}
}

// Resolve returns the first reachable website URL for the company, or
// ErrNotFound when every strategy misses.
func (r *Resolver) Resolve(ctx context.Context, companyName string) (string, error) {
	if url := r.tryCommonDomains(ctx, companyName); url != "" {
		if r.verbose {
			log.Printf("[RESOLVE] Found via domain pattern: %s", url)
		}
		return url, nil
	}

	if url := r.trySearch(ctx, companyName); url != "" {
		if r.verbose {
			log.Printf("[RESOLVE] Found via search: %s", url)
		}
		return url, nil
	}

	if url := r.tryLinkScan(ctx, companyName); url != "" {
		if r.verbose {
			log.Printf("[RESOLVE] Found via link scan: %s", url)
		}
		return url, nil
	}

	return "", ErrNotFound
}

// tryCommonDomains probes candidate URLs built from naming conventions and
// returns the first one that answers with a success status.
func (r *Resolver) tryCommonDomains(ctx context.Context, companyName string) string {
	for _, candidate := range CandidateURLs(companyName) {
		if r.probe(ctx, candidate) {
			return candidate
		}
	}
	return ""
}

// trySearch queries the primary search engine for the company's official
// website, filters obviously-irrelevant domains and probes survivors.
func (r *Resolver) trySearch(ctx context.Context, companyName string) string {
	if r.searcher == nil {
		return ""
	}

	results, err := r.searcher.Search(ctx, companyName+" official website")
	if err != nil {
		if r.verbose {
			log.Printf("[RESOLVE] Search failed: %v", err)
		}
		return ""
	}

	for i, result := range results {
		if i >= maxSearchResults {
			break
		}
		if !IsLikelyCompanyWebsite(result.URL, companyName) {
			continue
		}
		if r.probe(ctx, result.URL) {
			return result.URL
		}
	}

	return ""
}

// tryLinkScan runs several query phrasings against the secondary engine's raw
// link scan, pausing between variants.
func (r *Resolver) tryLinkScan(ctx context.Context, companyName string) string {
	if r.scanner == nil {
		return ""
	}

	variants := []string{
		companyName + " official site",
		companyName + " homepage",
		companyName + " corporate website",
		companyName,
	}

	for i, query := range variants {
		if i > 0 {
			r.sleep(queryVariantDelay)
		}

		links, err := r.scanner.ScanLinks(ctx, query)
		if err != nil {
			continue
		}

		for _, link := range links {
			if !IsLikelyCompanyWebsite(link, companyName) {
				continue
			}
			if r.probe(ctx, link) {
				return link
			}
		}
	}

	return ""
}

package discovery

import (
	"net/url"
	"strings"
)

// excludedDomains are known non-company domains: social networks, job boards,
// business-data aggregators, news outlets, encyclopedias, video platforms.
var excludedDomains = []string{
	"linkedin.com", "facebook.com", "twitter.com", "x.com", "instagram.com",
	"glassdoor.com", "indeed.com", "crunchbase.com", "wikipedia.org",
	"youtube.com", "bloomberg.com", "reuters.com", "techcrunch.com",
}

// IsLikelyCompanyWebsite reports whether a URL plausibly belongs to the
// company. It rejects domains on the fixed denylist. The name-token check is
// advisory only: a URL whose domain contains no name token is still accepted.
// There is no positive verification beyond substring containment.
func IsLikelyCompanyWebsite(urlStr string, companyName string) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	domain := strings.ToLower(parsed.Host)
	if domain == "" {
		return false
	}

	for _, excluded := range excludedDomains {
		if strings.Contains(domain, excluded) {
			return false
		}
	}

	for _, word := range strings.Fields(strings.ToLower(companyName)) {
		if len(word) > 3 && strings.Contains(domain, word) {
			return true
		}
	}

	// Accept by default when no name token matches
	return true
}

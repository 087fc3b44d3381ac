package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateURLs_SingleWord(t *testing.T) {
	candidates := CandidateURLs("Acme")

	// Compact and hyphen forms are identical for single words, so only the
	// compact set is generated.
	assert.Equal(t, []string{
		"https://www.acme.com", "https://acme.com",
		"https://www.acme.ai", "https://acme.ai",
		"https://www.acme.io", "https://acme.io",
		"https://www.acme.co", "https://acme.co",
		"https://www.acme.org", "https://acme.org",
	}, candidates)
}

func TestCandidateURLs_MultiWord(t *testing.T) {
	candidates := CandidateURLs("Initech Labs, Inc.")

	assert.Contains(t, candidates, "https://www.initechlabsinc.com")
	assert.Contains(t, candidates, "https://initech-labs-inc.com")
	assert.Contains(t, candidates, "https://www.initech-labs-inc.ai")

	// Compact variants come before hyphen variants
	assert.Equal(t, "https://www.initechlabsinc.com", candidates[0])
}

func TestCandidateURLs_FirstCandidateIsWWWCom(t *testing.T) {
	candidates := CandidateURLs("Acme")
	assert.Equal(t, "https://www.acme.com", candidates[0])
}

func TestCandidateURLs_EmptyName(t *testing.T) {
	assert.Empty(t, CandidateURLs("   "))
}

package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLikelyCompanyWebsite(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		company string
		want    bool
	}{
		{"company domain", "https://www.acme.com", "Acme Robotics", true},
		{"linkedin rejected", "https://www.linkedin.com/company/acme", "Acme", false},
		{"wikipedia rejected", "https://en.wikipedia.org/wiki/Acme", "Acme", false},
		{"job board rejected", "https://www.indeed.com/cmp/acme", "Acme", false},
		{"news outlet rejected", "https://techcrunch.com/2024/01/acme", "Acme", false},
		{"video platform rejected", "https://www.youtube.com/@acme", "Acme", false},
		// Short name tokens (<=3 chars) never match, but the URL is still
		// accepted by default.
		{"accept by default without token match", "https://www.example.com", "Abc", true},
		{"unparseable", "://bad", "Acme", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLikelyCompanyWebsite(tt.url, tt.company))
		})
	}
}

func TestIsLikelyCompanyWebsite_TokenMatchIsAdvisory(t *testing.T) {
	// A domain containing a >3 char name token is accepted early, but a
	// domain containing none is accepted too.
	assert.True(t, IsLikelyCompanyWebsite("https://initech.io", "Initech Systems"))
	assert.True(t, IsLikelyCompanyWebsite("https://totally-unrelated.net", "Initech Systems"))
}

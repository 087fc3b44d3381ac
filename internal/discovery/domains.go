package discovery

import "strings"

// tlds are tried in priority order for both name forms.
var tlds = []string{".com", ".ai", ".io", ".co"}

// CandidateURLs derives candidate website URLs from a company name using
// common naming conventions. Two normalized forms are used: the name with all
// whitespace and punctuation stripped, and the name with whitespace replaced
// by hyphens. For each form, www-prefixed and bare hosts are combined with a
// fixed TLD priority list. Order is significant: the first reachable
// candidate wins.
func CandidateURLs(companyName string) []string {
	compact := compactName(companyName)
	hyphen := hyphenName(companyName)

	var candidates []string
	if compact != "" {
		for _, tld := range tlds {
			candidates = append(candidates,
				"https://www."+compact+tld,
				"https://"+compact+tld,
			)
		}
		candidates = append(candidates,
			"https://www."+compact+".org",
			"https://"+compact+".org",
		)
	}

	if hyphen != "" && hyphen != compact {
		for _, tld := range []string{".com", ".ai", ".io"} {
			candidates = append(candidates,
				"https://www."+hyphen+tld,
				"https://"+hyphen+tld,
			)
		}
	}

	return candidates
}

// compactName lowercases the name and strips whitespace and punctuation.
func compactName(name string) string {
	s := strings.ToLower(name)
	for _, r := range []string{" ", "\t", ".", ",", "-"} {
		s = strings.ReplaceAll(s, r, "")
	}
	return s
}

// hyphenName lowercases the name, replaces whitespace with hyphens and strips
// punctuation.
func hyphenName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), "-")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	return s
}

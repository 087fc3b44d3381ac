package founders

import (
	"regexp"
	"strings"
)

// disqualifyingWords mark lines that are organization references or model
// filler rather than person names.
var disqualifyingWords = []string{
	"team", "company", "founded", "the", "inc", "llc", "ltd", "corporation", "group",
}

// titlePattern strips honorific and role tokens from candidate names.
var titlePattern = regexp.MustCompile(`(?i)\b(CEO|CTO|CFO|COO|President|Director)\b|\b(Mr|Ms|Dr|Prof)\.`)

// FilterNames applies the deterministic post-filter to the model's
// line-separated output. A cleaned candidate survives if it contains a space
// (a full name) or is alphabetic and at least 4 characters (a plausible
// single name). Output order follows input order; duplicates are kept.
func FilterNames(lines []string) []string {
	var filtered []string

	for _, line := range lines {
		name := strings.TrimSpace(line)
		if len(name) < 3 {
			continue
		}

		if containsDisqualifyingWord(name) {
			continue
		}

		clean := strings.TrimSpace(titlePattern.ReplaceAllString(name, ""))
		clean = strings.Join(strings.Fields(clean), " ")
		if len(clean) < 3 {
			continue
		}

		if strings.Contains(clean, " ") {
			filtered = append(filtered, clean)
		} else if len(clean) >= 4 && isAlpha(clean) {
			filtered = append(filtered, clean)
		}
	}

	return filtered
}

func containsDisqualifyingWord(name string) bool {
	lower := strings.ToLower(name)
	for _, word := range disqualifyingWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return len(s) > 0
}

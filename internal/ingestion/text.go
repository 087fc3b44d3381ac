// Package ingestion reads the user's local documents: the resume PDF and the
// optional email template. Extracted text is normalized before it reaches any
// prompt.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRun    = regexp.MustCompile(`[ \t]+`)
	blankRun    = regexp.MustCompile(`\n\n\n+`)
	controlRune = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f]`)
)

// CleanText normalizes extracted document text: line endings, runs of
// horizontal whitespace, stray control characters, and excessive blank lines.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = controlRune.ReplaceAllString(content, "")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimRight(spaceRun.ReplaceAllString(line, " "), " "))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRun.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

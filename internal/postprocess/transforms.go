// Package postprocess cleans raw model output into a subject and body. It is
// an ordered pipeline of deterministic text transforms; each transform is
// exported and testable on its own, and re-running the pipeline on its own
// output is a no-op.
package postprocess

import (
	"regexp"
	"strings"
)

// preamblePatterns match scaffolding the model tends to prepend despite
// instructions. Removed anywhere in the text.
var preamblePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Here is a cold email.*?:`),
	regexp.MustCompile(`(?i)Below is.*?email.*?:`),
	regexp.MustCompile(`(?i)I.*?generated.*?email.*?:`),
	regexp.MustCompile(`(?i)Based on.*?information.*?:`),
	regexp.MustCompile(`(?i)Here.*?personalized.*?email.*?:`),
}

// leadingIntroPatterns match remaining instructional lead-ins at line starts.
var leadingIntroPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^\s*Here.*?:\s*`),
	regexp.MustCompile(`(?im)^\s*Below.*?:\s*`),
}

var (
	blankRunPattern  = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)
	emailBodyMarker  = regexp.MustCompile(`(?i)EMAIL BODY:\s*`)
	leadingEmailLine = regexp.MustCompile(`(?im)^\s*Email:\s*`)
	subjectLine      = regexp.MustCompile(`(?im)^\s*Subject:.*$`)
	innerSpaceRun    = regexp.MustCompile(`\s+`)
)

// StripPreamble removes known model scaffolding phrasings and any leading
// "Here ...:" / "Below ...:" lines.
func StripPreamble(text string) string {
	for _, pattern := range preamblePatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	for _, pattern := range leadingIntroPatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

// CollapseBlankLines reduces runs of 3 or more line breaks (blank lines may
// contain horizontal whitespace) to exactly 2.
func CollapseBlankLines(text string) string {
	return blankRunPattern.ReplaceAllString(text, "\n\n")
}

// StripBodyArtifacts removes leftover markers from an extracted body:
// EMAIL BODY: markers, leading Email: lines, and any full Subject: line.
func StripBodyArtifacts(body string) string {
	body = StripPreamble(body)
	body = emailBodyMarker.ReplaceAllString(body, "")
	body = leadingEmailLine.ReplaceAllString(body, "")
	body = subjectLine.ReplaceAllString(body, "")
	return strings.TrimSpace(body)
}

// ReflowParagraphs splits the body on blank lines, collapses line breaks and
// repeated whitespace inside each paragraph to single spaces, drops empty
// paragraphs and rejoins with blank lines.
func ReflowParagraphs(body string) string {
	paragraphs := strings.Split(body, "\n\n")
	formatted := make([]string, 0, len(paragraphs))

	for _, para := range paragraphs {
		clean := strings.TrimSpace(innerSpaceRun.ReplaceAllString(para, " "))
		if clean != "" {
			formatted = append(formatted, clean)
		}
	}

	return strings.Join(formatted, "\n\n")
}

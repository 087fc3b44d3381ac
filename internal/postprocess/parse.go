package postprocess

import (
	"strings"
)

// subjectMarker is the literal the compose prompt instructs the model to
// start with.
const subjectMarker = "SUBJECT:"

// Email is the parsed {subject, body} pair ready for editing and sending.
type Email struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// DefaultSubject is used when no subject can be recovered from the raw text.
func DefaultSubject(companyName string) string {
	return "Application for position at " + companyName
}

// Parse runs the cleanup pipeline over raw model output and splits it into a
// subject and a reflowed body. companyName feeds the fallback subject.
// Parse is idempotent: feeding a parsed body back through produces the same
// body again.
func Parse(raw string, companyName string) Email {
	cleaned := CollapseBlankLines(StripPreamble(raw))

	subject, body := splitSubject(cleaned)
	if subject == "" {
		subject = DefaultSubject(companyName)
	}

	body = ReflowParagraphs(StripBodyArtifacts(body))

	return Email{Subject: subject, Body: body}
}

// splitSubject extracts the subject from a SUBJECT: marker line, consuming
// one blank line after it. Without the literal marker it falls back to
// scanning for any "subject...:" line whose remainder is longer than 5
// characters; failing that the whole text is the body and the subject is
// left empty for the caller to default.
func splitSubject(text string) (string, string) {
	lines := strings.Split(text, "\n")

	if strings.Contains(text, subjectMarker) {
		var subject string
		var bodyLines []string
		foundSubject := false
		skipNextEmpty := false

		for _, line := range lines {
			stripped := strings.TrimSpace(line)
			switch {
			case !foundSubject && strings.HasPrefix(stripped, subjectMarker):
				subject = strings.TrimSpace(strings.TrimPrefix(stripped, subjectMarker))
				foundSubject = true
				skipNextEmpty = true
			case foundSubject:
				if skipNextEmpty && stripped == "" {
					skipNextEmpty = false
					continue
				}
				if stripped != "" {
					bodyLines = append(bodyLines, stripped)
				} else {
					// Preserve paragraph breaks
					bodyLines = append(bodyLines, "")
				}
			}
		}

		if subject == "" {
			subject = scanSubjectLine(lines)
		}

		return subject, strings.TrimSpace(strings.Join(bodyLines, "\n"))
	}

	// No marker: default subject unless a subject-looking line is present,
	// in which case everything after that line becomes the body.
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if !strings.HasPrefix(strings.ToLower(stripped), "subject") {
			continue
		}
		if _, after, ok := strings.Cut(stripped, ":"); ok {
			candidate := strings.TrimSpace(after)
			if len(candidate) > 5 {
				body := strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
				return candidate, body
			}
		}
	}

	return "", strings.TrimSpace(text)
}

// scanSubjectLine looks for any line beginning with "subject" and a colon,
// returning the text after the colon when longer than 5 characters.
func scanSubjectLine(lines []string) string {
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if !strings.HasPrefix(strings.ToLower(stripped), "subject") {
			continue
		}
		if _, after, ok := strings.Cut(stripped, ":"); ok {
			candidate := strings.TrimSpace(after)
			if len(candidate) > 5 {
				return candidate
			}
		}
	}
	return ""
}

package ingestion

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ResumeText extracts the plain text of a PDF resume, page by page. Any page
// that fails to extract fails the whole resume; a half-read resume would
// silently degrade every email drafted from it.
func ResumeText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open resume PDF %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract page %d of %s: %w", i, path, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	cleaned := CleanText(b.String())
	if cleaned == "" {
		return "", fmt.Errorf("resume PDF %s contains no extractable text", path)
	}
	return cleaned, nil
}

package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	docx "github.com/fumiama/go-docx"
)

// TemplateText reads an optional email template file. Plain .txt files are
// read directly; .docx files are parsed and their non-empty paragraphs joined
// with newlines.
func TemplateText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read template %s: %w", path, err)
		}
		return CleanText(string(data)), nil
	case ".docx":
		return docxText(path)
	default:
		return "", fmt.Errorf("unsupported template format %s: use .txt or .docx", filepath.Ext(path))
	}
}

func docxText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open template %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat template %s: %w", path, err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			if text := strings.TrimSpace(para.String()); text != "" {
				paragraphs = append(paragraphs, text)
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docindex

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractText returns the plain text of a Markdown or PDF file. Other
// extensions are rejected.
func ExtractText(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".md", ".markdown":
		return extractMarkdownText(path)
	case ".pdf":
		return extractPDFText(path)
	default:
		return "", fmt.Errorf("unsupported file extension %q: only .md and .pdf are indexed", ext)
	}
}

func extractMarkdownText(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			// Separate blocks so adjacent text does not run together.
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			if n.FirstChild() == nil {
				// Blocks without inline children (code blocks) carry raw lines.
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					buf.Write(seg.Value(src))
				}
			}
		}
		if t, ok := n.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("walking %s: %w", path, err)
	}
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return "", fmt.Errorf("no text extracted from %s", path)
	}
	return out, nil
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(pageText)
	}

	out := strings.TrimSpace(buf.String())
	if out == "" {
		return "", fmt.Errorf("no text extracted from %s", path)
	}
	return out, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown turns Markdown source into the structural Document
// representation: ordered headings, links, and images plus a word count.
// Parsing goes through goldmark; no extra grammar is layered on top, so
// nested or escaped constructs behave exactly as goldmark resolves them.
package markdown

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/Krisha434/dockit/pkg/types"
)

// ErrBinaryInput is returned when the input is not readable text.
var ErrBinaryInput = errors.New("input is not text")

// md parses raw URLs as autolinks so bare http(s) references count as links.
var md = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// Parse reads and parses the Markdown file at path.
func Parse(path string) (*types.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseBytes(path, src)
}

// ParseBytes parses Markdown source into a Document. The name is recorded
// as the document path. Binary or non-UTF-8 input fails with ErrBinaryInput.
func ParseBytes(name string, src []byte) (*types.Document, error) {
	if !utf8.Valid(src) || strings.ContainsRune(string(src), 0) {
		return nil, fmt.Errorf("parsing %s: %w", name, ErrBinaryInput)
	}

	root := md.Parser().Parse(text.NewReader(src))

	doc := &types.Document{
		Path: name,
		// Whitespace-separated tokens of the raw source.
		WordCount: len(strings.Fields(string(src))),
	}

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			doc.Headings = append(doc.Headings, types.Heading{
				Level: node.Level,
				Text:  string(node.Text(src)),
			})
		case *ast.Link:
			doc.Links = append(doc.Links, types.Link{
				Text: string(node.Text(src)),
				URL:  string(node.Destination),
			})
		case *ast.AutoLink:
			doc.Links = append(doc.Links, types.Link{
				URL: string(node.URL(src)),
			})
		case *ast.Image:
			doc.Images = append(doc.Images, types.Image{
				Alt: string(node.Text(src)),
				URL: string(node.Destination),
			})
			// Children of an image are its alt text, not links.
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", name, err)
	}

	return doc, nil
}

// Summarize computes the aggregate counts for a parsed document. Pure;
// the counts are always consistent with the parse that produced doc.
func Summarize(doc *types.Document) types.Summary {
	return types.Summary{
		Words:    doc.WordCount,
		Headings: len(doc.Headings),
		Links:    len(doc.Links),
		Images:   len(doc.Images),
	}
}

// LinkURLs returns the document's link destinations in order, without
// duplicates. Validation is keyed by URL, so each URL is looked up once.
func LinkURLs(doc *types.Document) []string {
	seen := make(map[string]bool, len(doc.Links))
	var urls []string
	for _, l := range doc.Links {
		if l.URL == "" || seen[l.URL] {
			continue
		}
		seen[l.URL] = true
		urls = append(urls, l.URL)
	}
	return urls
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures passed between dockit
// stages: parsed documents, persisted tasks, indexed documents, and
// weather records.
package types

// Heading is one Markdown heading in document order.
type Heading struct {
	// Level is the heading depth, 1 through 6.
	Level int `json:"level" yaml:"level"`

	// Text is the heading text with inline markup stripped.
	Text string `json:"text" yaml:"text"`
}

// LinkStatus is the reachability verdict for a single URL.
type LinkStatus struct {
	// Valid reports whether the URL answered with a status below 400.
	Valid bool `json:"valid" yaml:"valid"`

	// Reason explains a broken verdict (timeout, DNS failure, HTTP status).
	// Empty for valid links.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Link is one Markdown link or raw URL in document order.
type Link struct {
	// Text is the link label. Empty for raw autolinks.
	Text string `json:"text" yaml:"text"`

	// URL is the link destination as written in the source.
	URL string `json:"url" yaml:"url"`

	// Status is filled in by link validation. Nil until validated.
	Status *LinkStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// Image is one Markdown image reference in document order.
type Image struct {
	Alt string `json:"alt" yaml:"alt"`
	URL string `json:"url" yaml:"url"`
}

// Document is the structural representation of a parsed Markdown file.
// It is created by the parser and not mutated afterwards; counts derived
// from it are always consistent with the parse that produced it.
type Document struct {
	// Path identifies the source file.
	Path string `json:"path" yaml:"path"`

	Headings []Heading `json:"headings" yaml:"headings"`
	Links    []Link    `json:"links" yaml:"links"`
	Images   []Image   `json:"images" yaml:"images"`

	// WordCount is the number of whitespace-separated tokens in the raw source.
	WordCount int `json:"word_count" yaml:"word_count"`
}

// Summary holds the aggregate counts for a parsed document.
type Summary struct {
	Words    int `json:"words" yaml:"words"`
	Headings int `json:"headings" yaml:"headings"`
	Links    int `json:"links" yaml:"links"`
	Images   int `json:"images" yaml:"images"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report formats analysis summaries, task listings, index results,
// and weather lookups for display. No business logic lives here; every
// function takes computed values and an io.Writer.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/Krisha434/dockit/internal/docindex"
	"github.com/Krisha434/dockit/pkg/types"
)

// Analysis is the full result of analyzing one Markdown file.
type Analysis struct {
	File    string        `json:"file" yaml:"file"`
	Summary types.Summary `json:"summary" yaml:"summary"`
	Links   []types.Link  `json:"links,omitempty" yaml:"links,omitempty"`
}

// WriteAnalysis renders an analysis as a human-readable summary block.
func WriteAnalysis(w io.Writer, a Analysis) {
	fmt.Fprintln(w, "=== Summary Report ===")
	fmt.Fprintf(w, "File:     %s\n", a.File)
	fmt.Fprintf(w, "Words:    %d\n", a.Summary.Words)
	fmt.Fprintf(w, "Headings: %d\n", a.Summary.Headings)
	fmt.Fprintf(w, "Links:    %d\n", a.Summary.Links)
	fmt.Fprintf(w, "Images:   %d\n", a.Summary.Images)

	if len(a.Links) > 0 {
		fmt.Fprintln(w, "Link status:")
		for _, l := range a.Links {
			switch {
			case l.Status == nil:
				fmt.Fprintf(w, "  - %s: not checked\n", l.URL)
			case l.Status.Valid:
				fmt.Fprintf(w, "  - %s: valid\n", l.URL)
			default:
				fmt.Fprintf(w, "  - %s: broken (%s)\n", l.URL, l.Status.Reason)
			}
		}
	}
	fmt.Fprintln(w, "======================")
}

// WriteJSON renders any value as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ExportAnalysis writes an analysis to path in the given format ("yaml"
// or "json").
func ExportAnalysis(a Analysis, format, path string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml", "":
		data, err = yaml.Marshal(a)
	case "json":
		data, err = json.MarshalIndent(a, "", "  ")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling analysis: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteTasks renders a task listing as a text table.
func WriteTasks(w io.Writer, tasks []types.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-6s  %-30s  %-8s  %-10s  %s\n",
		"ID", "Done", "Title", "Priority", "Due", "Description")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, t := range tasks {
		done := " "
		if t.Completed {
			done = "x"
		}
		fmt.Fprintf(w, "%-4d  [%s]    %-30s  %-8s  %-10s  %s\n",
			t.ID, done, clip(t.Title, 30), t.Priority, t.DueDate, clip(t.Description, 40))
	}

	fmt.Fprintf(w, "\n%d task(s)\n", len(tasks))
}

// WriteDocuments renders an index listing as a text table.
func WriteDocuments(w io.Writer, docs []types.IndexedDocument) {
	if len(docs) == 0 {
		fmt.Fprintln(w, "No documents.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-30s  %-12s  %-24s  %s\n",
		"ID", "Title", "Category", "Filename", "Added")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, d := range docs {
		fmt.Fprintf(w, "%-4d  %-30s  %-12s  %-24s  %s\n",
			d.ID, clip(d.Title, 30), clip(d.Category, 12), clip(d.Filename, 24), d.AddedAt)
	}

	fmt.Fprintf(w, "\n%d document(s)\n", len(docs))
}

// WriteSimilar renders similarity results with their scores.
func WriteSimilar(w io.Writer, results []docindex.SimilarResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No similar documents.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-10s  %-30s  %s\n", "ID", "Score", "Title", "Category")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, r := range results {
		fmt.Fprintf(w, "%-4d  %-10.4f  %-30s  %s\n", r.ID, r.Similarity, clip(r.Title, 30), r.Category)
	}
}

// WriteWeather renders current conditions.
func WriteWeather(w io.Writer, cw types.CurrentWeather, units string) {
	fmt.Fprintf(w, "Current weather in %s\n", cw.City)
	fmt.Fprintf(w, "  Temperature: %.1f%s\n", cw.Temperature, unitSuffix(units))
	fmt.Fprintf(w, "  Condition:   %s\n", cw.Condition)
	fmt.Fprintf(w, "  Humidity:    %d%%\n", cw.Humidity)
}

// WriteForecast renders forecast entries, one line per 3-hour interval.
func WriteForecast(w io.Writer, city string, entries []types.ForecastEntry, units string) {
	fmt.Fprintf(w, "Forecast for %s (next %d hours):\n", city, len(entries)*3)
	for _, e := range entries {
		fmt.Fprintf(w, "  %s  %6.1f%s  %s\n", e.Timestamp, e.Temperature, unitSuffix(units), e.Condition)
	}
}

func unitSuffix(units string) string {
	switch units {
	case "imperial":
		return "°F"
	case "standard":
		return "K"
	default:
		return "°C"
	}
}

// clip shortens s to at most max characters, counting runes so a multibyte
// character is never split.
func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

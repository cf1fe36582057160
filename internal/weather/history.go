// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package weather

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Krisha434/dockit/pkg/types"
)

// LoadHistory reads past lookups from path. A missing file is an empty
// history; an unparsable file starts fresh with a warning on w.
func LoadHistory(path string, w io.Writer) []types.WeatherRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var history []types.WeatherRecord
	if err := json.Unmarshal(data, &history); err != nil {
		fmt.Fprintf(w, "warning: could not parse %s, starting fresh\n", path)
		return nil
	}
	return history
}

// AppendHistory appends a record to the history file at path, creating
// it if needed.
func AppendHistory(path string, rec types.WeatherRecord, w io.Writer) error {
	history := append(LoadHistory(path, w), rec)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

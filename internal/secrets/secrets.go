// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves API keys, first from the environment and then
// from a directory of plain-text files. Each file in the directory is one
// secret: the filename is the key name and the trimmed contents the value.
package secrets

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the secrets directory consulted after the environment.
const DefaultDir = ".secrets"

// Lookup resolves key, checking the environment variable form first
// (upper-case, dashes to underscores, DOCKIT_ prefix) and then the file
// dir/key. Returns "" when the key is not set anywhere.
func Lookup(dir, key string) string {
	envKey := "DOCKIT_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
	if v := os.Getenv(envKey); v != "" {
		return v
	}

	data, err := os.ReadFile(filepath.Join(dir, key))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

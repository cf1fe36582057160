// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_EnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "api-key"), []byte("from-file\n"), 0o600))
	t.Setenv("DOCKIT_API_KEY", "from-env")

	assert.Equal(t, "from-env", Lookup(dir, "api-key"))
}

func TestLookup_FileFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "api-key"), []byte("  file-value \n"), 0o600))

	assert.Equal(t, "file-value", Lookup(dir, "api-key"))
}

func TestLookup_Missing(t *testing.T) {
	assert.Equal(t, "", Lookup(t.TempDir(), "api-key"))
}

func TestLookup_MissingDir(t *testing.T) {
	assert.Equal(t, "", Lookup(filepath.Join(t.TempDir(), "nope"), "api-key"))
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormReportsSchemaFailureAndKeepsRunning(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()

	// Corrupt the database file so schema setup fails on open.
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "staffbook.db"), []byte("not a database"), 0o644))

	out, err := executeCommand(t, "help\nquit\ny\n",
		"form", "--config-dir", configDir, "--data-dir", dataDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Failed to create table:")

	// The session opened anyway and still serves commands.
	assert.Contains(t, out, "staffbook> ")
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "Do you want to quit?")
}

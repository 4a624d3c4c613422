package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crawlkit/catalogpress/internal/cli/config"
)

func TestListCommand(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "sku\nS1\n")
	writeFile(t, dir, "a.csv", "sku\nS2\n")
	writeFile(t, dir, "audit_table.csv", "sku\nS3\n")
	writeFile(t, dir, "progress_1.csv", "sku\nS4\n")

	cmd := NewListCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"-i", dir})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "a.csv")
	assert.Contains(t, out, "b.csv")
	assert.NotContains(t, out, "audit_table.csv")
	assert.NotContains(t, out, "progress_1.csv")
	assert.Contains(t, out, "2 file(s)")
}

func TestListCommandEmpty(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	missing := filepath.Join(t.TempDir(), "nope")

	cmd := NewListCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"-i", missing})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No input files found")
}

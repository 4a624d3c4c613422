package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crawlkit/catalogpress/internal/cli/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCombineCommand(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "combined.csv")
	writeFile(t, dir, "batch_1.csv",
		"sku,name,detail_variant_sku\nS1,Widget,V1\nS2,Dup,V1\n")

	cmd := NewCombineCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--input-dir", dir, "--output-file", out})

	require.NoError(t, cmd.Execute())

	// Artifact written and duplicates removed.
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Widget")
	assert.NotContains(t, string(data), "Dup")

	// Summary narrated to stdout.
	output := buf.String()
	assert.Contains(t, output, "batch_1.csv")
	assert.Contains(t, output, "detail_variant_sku")
}

func TestCombineCommandNoInput(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	missing := filepath.Join(t.TempDir(), "nope")
	out := filepath.Join(t.TempDir(), "combined.csv")

	cmd := NewCombineCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"-i", missing, "-o", out})

	// A missing input directory is a message, not an error.
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No input files to combine")
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCombineCommandOutputError(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "sku\nS1\n")

	blocker := writeFile(t, t.TempDir(), "blocker", "x")

	cmd := NewCombineCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"-i", dir, "-o", filepath.Join(blocker, "out.csv")})

	require.Error(t, cmd.Execute())
}

func TestCombineCommandMetadata(t *testing.T) {
	cmd := NewCombineCommand()
	assert.Equal(t, "combine", cmd.Use)

	for _, flag := range []string{"input-dir", "output-file"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

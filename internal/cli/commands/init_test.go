package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/crawlkit/catalogpress/internal/cli/config"
)

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	cmd := NewInitCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{dir})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "catalogpress.yaml"))
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "product_raw", cfg.InputDir)
	assert.Equal(t, []string{"audit_table.csv"}, cfg.ExcludeFiles)
}

func TestInitCommandExistingConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "catalogpress.yaml", "input_dir: keep\n")

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	// --force overwrites.
	cmd = NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{dir, "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "catalogpress.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "keep")
}

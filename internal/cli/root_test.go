package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crawlkit/catalogpress/internal/cli/config"
)

func TestRootCombineEndToEnd(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "combined.csv")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "batch.csv"),
		[]byte("sku,name,image_1,detail_breadcrumbs\nS1,Widget,http://a,Home > Toys > Games\n"), 0644))

	// Config file supplies the input dir; the output flag overrides.
	cfgPath := filepath.Join(t.TempDir(), "catalogpress.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input_dir: "+dir+"\n"), 0644))

	rootCmd := NewRootCmd()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"combine", "--config", cfgPath, "--output-file", out})

	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Widget")
	assert.Contains(t, string(data), "category_1")
	assert.Contains(t, buf.String(), "batch.csv")
}

func TestRootVersionFlag(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	rootCmd := NewRootCmd()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--version"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "catalogpress")
}

func TestRootInvalidConfig(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cfgPath := filepath.Join(t.TempDir(), "catalogpress.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("top_columns: 0\n"), 0644))

	rootCmd := NewRootCmd()
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"combine", "--config", cfgPath})

	require.Error(t, rootCmd.Execute())
}

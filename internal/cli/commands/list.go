package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/crawlkit/catalogpress/internal/catalog"
	"github.com/crawlkit/catalogpress/internal/cli/config"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var inputDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the input files a combine run would process",
		Long: `List the CSV files in the input directory that the combine command would
select, after applying the reserved-filename exclusions, in processing order.`,
		Example: `  # List inputs under the configured directory
  catalogpress list

  # List inputs elsewhere
  catalogpress list --input-dir ./product_raw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, inputDir)
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input-dir", "i", "", "Directory of raw CSV extracts (default from config)")

	return cmd
}

func runList(cmd *cobra.Command, inputDir string) error {
	cfg := getConfig()
	if inputDir == "" {
		inputDir = cfg.InputDir
	}

	combiner := catalog.New(catalog.Config{
		InputDir:        inputDir,
		OutputFile:      cfg.OutputFile,
		ExcludeFiles:    cfg.ExcludeFiles,
		ExcludePrefixes: cfg.ExcludePrefixes,
		Logger:          config.GetLogger(cmd.Context()),
	})

	files, err := combiner.Discover()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No input files found in %s\n", inputDir)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "File", "Size"})
	for i, path := range files {
		size := "?"
		if info, err := os.Stat(path); err == nil {
			size = fmt.Sprintf("%d B", info.Size())
		}
		t.AppendRow(table.Row{i + 1, filepath.Base(path), size})
	}
	t.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "%d file(s)\n", len(files))
	return nil
}

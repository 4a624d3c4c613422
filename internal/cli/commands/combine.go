package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crawlkit/catalogpress/internal/catalog"
	"github.com/crawlkit/catalogpress/internal/cli/config"
)

// CombineOptions holds options for the combine command.
type CombineOptions struct {
	InputDir   string
	OutputFile string
}

// NewCombineCommand creates the combine command.
func NewCombineCommand() *cobra.Command {
	opts := &CombineOptions{}

	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Combine raw crawl CSVs into one deduplicated catalog",
		Long: `Combine all product-detail CSV extracts in the input directory into a
single normalized catalog CSV.

Per file, the raw rows are projected to the catalog allow-list, image URLs
scattered across per-image columns are consolidated into an all_images JSON
array, and category_1..category_4 are derived from the breadcrumb column.
The concatenated result is deduplicated by detail_variant_sku (falling back
to sku), fully-empty columns are dropped, and the result is written as one
CSV with a run summary on stdout.

Unreadable or malformed input files are logged and skipped; a missing input
directory or an empty selection ends the run without writing output.`,
		Example: `  # Combine with configured defaults
  catalogpress combine

  # Override input and output locations
  catalogpress combine --input-dir ./product_raw --output-file ./out/catalog.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCombine(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.InputDir, "input-dir", "i", "", "Directory of raw CSV extracts (default from config)")
	cmd.Flags().StringVarP(&opts.OutputFile, "output-file", "o", "", "Path of the combined catalog CSV (default from config)")

	return cmd
}

func runCombine(cmd *cobra.Command, opts *CombineOptions) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	inputDir := cfg.InputDir
	if opts.InputDir != "" {
		inputDir = opts.InputDir
	}
	outputFile := cfg.OutputFile
	if opts.OutputFile != "" {
		outputFile = opts.OutputFile
	}

	combiner := catalog.New(catalog.Config{
		InputDir:        inputDir,
		OutputFile:      outputFile,
		ExcludeFiles:    cfg.ExcludeFiles,
		ExcludePrefixes: cfg.ExcludePrefixes,
		Logger:          logger,
	})

	res, err := combiner.Run(cmd.Context())
	if err != nil {
		return err
	}
	if res == nil {
		// Soft stop: already logged, nothing was written.
		fmt.Fprintf(cmd.OutOrStdout(), "No input files to combine in %s\n", inputDir)
		return nil
	}

	catalog.WriteReport(cmd.OutOrStdout(), res, cfg.TopColumns)
	return nil
}

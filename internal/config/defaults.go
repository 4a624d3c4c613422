// Package config holds shared default values for the CatalogPress pipeline.
package config

import "path/filepath"

// Default configuration values.
const (
	DefaultInputDir   = "product_raw"
	DefaultOutputDir  = "product_dedup"
	DefaultOutputName = "combined_catalog.csv"

	// DefaultTopColumns is how many columns the per-column breakdown
	// in the run summary shows.
	DefaultTopColumns = 20
)

// Reserved filenames in the input directory. The crawler writes an audit
// table and checkpoint files alongside the per-product extracts; neither is
// catalog data.
var (
	DefaultExcludeFiles    = []string{"audit_table.csv"}
	DefaultExcludePrefixes = []string{"progress"}
)

// DefaultOutputFile returns the default output path.
func DefaultOutputFile() string {
	return filepath.Join(DefaultOutputDir, DefaultOutputName)
}

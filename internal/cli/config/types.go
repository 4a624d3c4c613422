// Package config provides configuration management for the CatalogPress CLI.
//
// Precedence (highest to lowest): flags > CATALOGPRESS_* env vars >
// catalogpress.yaml > built-in defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	// InputDir is the directory of raw per-product CSV extracts.
	InputDir string `koanf:"input_dir" yaml:"input_dir"`
	// OutputFile is the path of the combined catalog CSV.
	OutputFile string `koanf:"output_file" yaml:"output_file"`
	// ExcludeFiles are exact filenames in InputDir to skip (the crawler's
	// audit table lives next to the extracts).
	ExcludeFiles []string `koanf:"exclude_files" yaml:"exclude_files"`
	// ExcludePrefixes skip in-progress/checkpoint files by name prefix.
	ExcludePrefixes []string `koanf:"exclude_prefixes" yaml:"exclude_prefixes"`
	// TopColumns is the size of the per-column breakdown in the summary.
	TopColumns int `koanf:"top_columns" yaml:"top_columns"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose" yaml:"verbose,omitempty"`
}

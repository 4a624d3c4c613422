package config

import "fmt"

// Validate checks if the configuration is valid.
//
// Input-directory existence is deliberately not checked here: a missing or
// empty input directory is a soft no-op for the pipeline, not a
// configuration error.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file is required")
	}
	if c.TopColumns <= 0 {
		return fmt.Errorf("top_columns must be positive, got %d", c.TopColumns)
	}
	return nil
}

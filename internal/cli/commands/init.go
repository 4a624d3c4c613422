package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/crawlkit/catalogpress/internal/cli/config"
	intconfig "github.com/crawlkit/catalogpress/internal/config"
)

const configHeader = `# CatalogPress configuration.
# Every key can also be set via CATALOGPRESS_* environment variables
# (e.g. CATALOGPRESS_INPUT_DIR) or overridden with CLI flags.
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default catalogpress.yaml",
		Long: `Write a catalogpress.yaml with the default configuration into the given
directory (current directory if omitted).`,
		Example: `  # Initialize in the current directory
  catalogpress init

  # Initialize in a project directory, overwriting an existing config
  catalogpress init ./crawl --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "catalogpress.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("catalogpress.yaml already exists. Use --force to overwrite")
	}

	defaults := config.Config{
		InputDir:        intconfig.DefaultInputDir,
		OutputFile:      intconfig.DefaultOutputFile(),
		ExcludeFiles:    intconfig.DefaultExcludeFiles,
		ExcludePrefixes: intconfig.DefaultExcludePrefixes,
		TopColumns:      intconfig.DefaultTopColumns,
	}
	body, err := yaml.Marshal(&defaults)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	if err := os.WriteFile(configPath, append([]byte(configHeader), body...), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "CatalogPress v%s\n", version)
			fmt.Fprintln(cmd.OutOrStdout(), "Crawl CSV combiner and catalog builder")
		},
	}
}

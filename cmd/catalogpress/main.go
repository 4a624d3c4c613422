// Package main is the entry point for the catalogpress CLI.
package main

import (
	"os"

	"github.com/crawlkit/catalogpress/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

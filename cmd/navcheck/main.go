// Package main provides the navcheck command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/navcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/Jacob-Barhak/gutensearch/internal/cli"
)

// Set by ldflags at release build time.
var version = "dev"

func main() {
	cmd := cli.NewRootCommand(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/denismitr/cali/internal/cli"
)

// version is set via ldflags at release time.
var version = "dev"

func main() {
	root := cli.NewRootCommand(cli.DefaultRuntime(), version)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

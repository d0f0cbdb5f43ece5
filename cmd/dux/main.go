package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dux/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev" //nolint:gochecknoglobals // Set by the linker

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

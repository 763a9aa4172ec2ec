// Command ftwstat walks a directory tree and totals the files whose path contains a pattern.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/ftwstat/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}

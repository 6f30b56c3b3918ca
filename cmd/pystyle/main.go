// Package main provides the pystyle command, a style checker for Python source.
package main

import (
	"os"

	"github.com/leapstack-labs/pystyle/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

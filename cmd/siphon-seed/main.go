// Package main is the entry point for siphon-seed.
package main

import (
	"fmt"
	"os"

	"github.com/rafael-alani/siphon-backend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

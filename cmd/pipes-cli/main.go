// Command-line client for pipes.go puzzle utilities.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pipes-cli: %v\n", err)
		os.Exit(1)
	}
}

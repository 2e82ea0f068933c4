package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pipes-cli",
	Short: "Generate, render, and solve pipe puzzles from the command line",
}

// minSize and maxSize are the CLI-level bounds on a puzzle's side
// length, carried over from the original generator's argument check.
const (
	minSize = 2
	maxSize = 25
)

func checkSize(n int) error {
	if n < minSize || n > maxSize {
		return fmt.Errorf("size %d out of range [%d,%d]", n, minSize, maxSize)
	}
	return nil
}

package main

import (
	"context"
	"fmt"

	"github.com/dcbrotsky/pipes.go/pipes"
	"github.com/spf13/cobra"
)

var (
	generateSize      int
	generateCount     int
	generateRandomize bool
	generateRender    bool
)

func init() {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more solved pipe puzzles",
		RunE:  runGenerate,
	}
	generateCmd.Flags().IntVarP(&generateSize, "size", "n", 5, "Side length of the puzzle grid")
	generateCmd.Flags().IntVarP(&generateCount, "count", "c", 1, "Number of distinct solutions to generate")
	generateCmd.Flags().BoolVar(&generateRandomize, "random", true, "Randomize search order (turn off for a deterministic run)")
	generateCmd.Flags().BoolVar(&generateRender, "render", false, "Also print a box-drawing rendering of each solution")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := checkSize(generateSize); err != nil {
		return err
	}
	opts := pipes.SolveOptions{MaxSolutions: generateCount, Randomize: generateRandomize}
	solutions, err := pipes.Generate(context.Background(), generateSize, opts)
	if err != nil {
		return err
	}
	for i, s := range solutions {
		fmt.Printf("%d: %s\n", i+1, s)
		if generateRender {
			board, n, err := pipes.Decode(s)
			if err != nil {
				return err
			}
			fmt.Println(pipes.RenderGrid(n, board))
		}
	}
	return nil
}

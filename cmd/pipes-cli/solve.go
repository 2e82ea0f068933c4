package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/dcbrotsky/pipes.go/moves"
	"github.com/dcbrotsky/pipes.go/pipes"
	"github.com/spf13/cobra"
)

var (
	solveBoard    string
	solveSize     int
	solveMaxMoves int
	solveVerbose  bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Drive a scrambled board to solved state move by move",
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVarP(&solveBoard, "board", "b", "", "Scrambled board string (if empty, one is generated and scrambled)")
	solveCmd.Flags().IntVarP(&solveSize, "size", "n", 5, "Side length to use when --board is omitted")
	solveCmd.Flags().IntVar(&solveMaxMoves, "max-moves", 500, "Give up after this many moves")
	solveCmd.Flags().BoolVarP(&solveVerbose, "verbose", "v", false, "Print every move, not just the result")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	board, n, err := startingBoard(ctx, solveBoard, solveSize)
	if err != nil {
		return err
	}

	session := moves.NewSession(localOracle(n))
	for step := 0; !moves.Solved(n, board); step++ {
		if step >= solveMaxMoves {
			return fmt.Errorf("did not reach a solved board in %d moves", solveMaxMoves)
		}
		move, err := session.Pick(ctx, board)
		if err != nil {
			return fmt.Errorf("move-picker stalled at step %d: %v", step, err)
		}
		board = moves.Apply(board, move)
		if solveVerbose {
			fmt.Printf("step %d: rotate cell %d by %d turn(s)\n", step+1, move.Cell, move.Turns)
		}
	}

	fmt.Println(pipes.Encode(board))
	fmt.Println(pipes.RenderGrid(n, board))
	return nil
}

// startingBoard decodes boardStr if given, otherwise generates and
// scrambles a fresh board of side length n.
func startingBoard(ctx context.Context, boardStr string, n int) ([]pipes.Pipe, int, error) {
	if boardStr != "" {
		return pipes.Decode(boardStr)
	}
	if err := checkSize(n); err != nil {
		return nil, 0, err
	}
	solutions, err := pipes.Generate(ctx, n, pipes.SolveOptions{MaxSolutions: 1})
	if err != nil {
		return nil, 0, err
	}
	board, _, err := pipes.Decode(solutions[0])
	if err != nil {
		return nil, 0, err
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return scramble(board, rng), n, nil
}

package main

import (
	"fmt"

	"github.com/dcbrotsky/pipes.go/pipes"
	"github.com/spf13/cobra"
)

var renderBoard string

func init() {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a canonical board string as a box-drawing grid",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&renderBoard, "board", "b", "", "Canonical board string to render (required)")
	renderCmd.MarkFlagRequired("board")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	board, n, err := pipes.Decode(renderBoard)
	if err != nil {
		return err
	}
	fmt.Println(pipes.RenderGrid(n, board))
	if pipes.Solved(n, board) {
		fmt.Println("solved")
	} else {
		fmt.Println("not solved")
	}
	return nil
}

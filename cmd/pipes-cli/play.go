// susen.go - a web-based Sudoku game and teaching tool.
// Copyright (C) 2015-2016 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dcbrotsky/pipes.go/moves"
	"github.com/dcbrotsky/pipes.go/pipes"
	"github.com/spf13/cobra"
)

var playSize int

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Interactively rotate cells on a scrambled board",
		RunE:  runPlay,
	}
	playCmd.Flags().IntVarP(&playSize, "size", "n", 5, "Side length of the puzzle grid")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := checkSize(playSize); err != nil {
		return err
	}
	return listen(os.Stdout, os.Stdin)
}

// request is one parsed line of player input, following the same
// inline/command/args split as the original REPL listener.
type request struct {
	inline  string
	command string
	args    []string
}

// listen reads lines from in and dispatches them until quit/EOF,
// in the style of cmd/susen-cli's original line-oriented loop. in
// and out are interfaces rather than *os.File so tests can drive the
// loop with in-memory buffers.
func listen(out io.Writer, in io.Reader) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	board, n, err := freshBoard(playSize, rng)
	if err != nil {
		return err
	}
	session := moves.NewSession(localOracle(n))

	prompt := false
	if f, ok := out.(*os.File); ok {
		if stat, _ := f.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
			prompt = true
		}
	}

	printState(out, n, board)
	input := make([]byte, 4096)
	for {
		if prompt {
			fmt.Fprintf(out, "pipes> ")
		}
		count, err := in.Read(input)
		switch err {
		case nil:
			r := &request{inline: strings.Trim(string(input[:count]), " \t\r\n")}
			fields := strings.Split(r.inline, " ")
			r.command = strings.ToLower(fields[0])
			for _, a := range fields[1:] {
				if len(a) > 0 {
					r.args = append(r.args, strings.ToLower(a))
				}
			}
			switch r.command {
			case "":
				continue
			case "quit", "exit":
				return nil
			case "state":
				printState(out, n, board)
			case "rotate":
				board, err = doRotate(board, r.args)
				if err != nil {
					fmt.Fprintf(out, "Error: %v\n", err)
				} else {
					session.Advance()
					printState(out, n, board)
				}
			case "hint":
				move, err := session.Pick(context.Background(), board)
				if err != nil {
					fmt.Fprintf(out, "No hint available: %v\n", err)
				} else {
					fmt.Fprintf(out, "Suggestion: rotate cell %d by %d turn(s)\n", move.Cell, move.Turns)
				}
			case "auto":
				move, err := session.Pick(context.Background(), board)
				if err != nil {
					fmt.Fprintf(out, "Move-picker stalled: %v\n", err)
				} else {
					board = moves.Apply(board, move)
					printState(out, n, board)
				}
			case "reset":
				board, n, err = freshBoard(playSize, rng)
				if err != nil {
					fmt.Fprintf(out, "Error: %v\n", err)
				} else {
					session = moves.NewSession(localOracle(n))
					printState(out, n, board)
				}
			default:
				usage(out, r.command)
			}
		case io.EOF:
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return nil
		default:
			return err
		}
	}
}

func freshBoard(n int, rng *rand.Rand) ([]pipes.Pipe, int, error) {
	solutions, err := pipes.Generate(context.Background(), n, pipes.SolveOptions{MaxSolutions: 1})
	if err != nil {
		return nil, 0, err
	}
	board, _, err := pipes.Decode(solutions[0])
	if err != nil {
		return nil, 0, err
	}
	return scramble(board, rng), n, nil
}

func doRotate(board []pipes.Pipe, args []string) ([]pipes.Pipe, error) {
	if len(args) != 1 {
		return board, fmt.Errorf("rotate requires one cell index argument")
	}
	cell, err := strconv.Atoi(args[0])
	if err != nil || cell < 0 || cell >= len(board) {
		return board, fmt.Errorf("%q is not a valid cell index", args[0])
	}
	return moves.Apply(board, moves.Move{Cell: cell, Turns: 1}), nil
}

func printState(out io.Writer, n int, board []pipes.Pipe) {
	fmt.Fprintln(out, pipes.RenderGrid(n, board))
	if pipes.Solved(n, board) {
		fmt.Fprintln(out, "Solved!")
	}
}

func usage(out io.Writer, command string) {
	fmt.Fprintf(out, "%q is not a known command\nUsage:\n", command)
	fmt.Fprintf(out, "    state             show the current board\n")
	fmt.Fprintf(out, "    rotate <cell>     rotate one cell 90 degrees\n")
	fmt.Fprintf(out, "    hint              ask the move-picker for a suggestion\n")
	fmt.Fprintf(out, "    auto              apply the move-picker's suggestion\n")
	fmt.Fprintf(out, "    reset             scramble a fresh board\n")
	fmt.Fprintf(out, "  and 'quit' or EOF to exit.\n")
}

package main

import (
	"context"
	"math/rand"

	"github.com/dcbrotsky/pipes.go/moves"
	"github.com/dcbrotsky/pipes.go/pipes"
)

// scramble returns a copy of board with every cell rotated a random
// number of quarter turns, leaving the multiset of pipe shapes (and
// hence the solvability of the underlying puzzle) unchanged.
func scramble(board []pipes.Pipe, rng *rand.Rand) []pipes.Pipe {
	out := make([]pipes.Pipe, len(board))
	for i, p := range board {
		turns := rng.Intn(4)
		for t := 0; t < turns; t++ {
			p = p.Rotate()
		}
		out[i] = p
	}
	return out
}

// localOracle is a hand-written stand-in for a trained move-picker
// model: it scores each rotation candidate by how many of the
// resulting cell's open sides agree with an already-open neighbor
// side, less one for each open side facing the board's edge: a
// purely local signal with no lookahead. It exists so `solve`
// and `play` have something to drive moves.Session with; it is not
// the oracle the web-facing session is meant to run.
func localOracle(n int) moves.Oracle {
	g := pipes.Grid{N: n}
	return func(ctx context.Context, vector []float64) ([]float64, error) {
		board := decodeVector(n, vector)
		scores := make([]float64, len(vector))
		for cell := range board {
			p := board[cell]
			for turns := 1; turns <= 4; turns++ {
				candidate := p
				for t := 0; t < turns; t++ {
					candidate = candidate.Rotate()
				}
				scores[cell*4+(turns-1)] = localScore(g, board, cell, candidate)
			}
		}
		return scores, nil
	}
}

// decodeVector rebuilds a board from the flat open-side vector an
// Oracle receives; it is the inverse of moves.Vector.
func decodeVector(n int, vector []float64) []pipes.Pipe {
	board := make([]pipes.Pipe, n*n)
	for cell := range board {
		var p pipes.Pipe
		for d := pipes.Up; d <= pipes.Left; d++ {
			p[d] = vector[cell*4+int(d)] > 0.5
		}
		board[cell] = p
	}
	return board
}

// localScore counts, for cell rotated to candidate, how many of its
// open sides face an already-open side of a real neighbor, less one
// for each open side that faces the board's edge.
func localScore(g pipes.Grid, board []pipes.Pipe, cell int, candidate pipes.Pipe) float64 {
	score := 0.0
	for d := pipes.Up; d <= pipes.Left; d++ {
		if !candidate.Open(d) {
			continue
		}
		if g.OnBoundary(cell, d) {
			score -= 1
			continue
		}
		neighbor := g.Neighbor(cell, d)
		if board[neighbor].Open(d.Opposite()) {
			score += 1
		}
	}
	return score
}

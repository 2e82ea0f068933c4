package moves

import (
	"context"

	"github.com/dcbrotsky/pipes.go/pipes"
)

// An Oracle scores every rotation candidate on a board. It is given
// the board's opening vector (length 4n², one 0/1 per opening, in
// row-major Up/Right/Down/Left order) and must return a score vector
// of the same length. The core never inspects the scores beyond their
// relative order, and requires only that equal inputs yield equal
// outputs for the life of the process: the tried-move memo (memo.go)
// depends on it.
type Oracle func(ctx context.Context, vector []float64) ([]float64, error)

// Vector encodes board as the flat 0/1 opening vector an Oracle
// expects: four entries per cell, Up/Right/Down/Left, row-major.
func Vector(board []pipes.Pipe) []float64 {
	v := make([]float64, 0, 4*len(board))
	for _, p := range board {
		for d := pipes.Up; d <= pipes.Left; d++ {
			if p.Open(d) {
				v = append(v, 1)
			} else {
				v = append(v, 0)
			}
		}
	}
	return v
}

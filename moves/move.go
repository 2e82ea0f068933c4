package moves

import "github.com/dcbrotsky/pipes.go/pipes"

// A Move is one quarter-turn-multiple rotation of a single cell.
type Move struct {
	Cell  int
	Turns int // 1..4; 4 is a full rotation back to the starting shape
}

// decodeCandidate turns an oracle score-vector index into a Move.
// The score vector has 4n² entries, four per cell: candidate index i
// names cell i/4 and turn count 1+(i%4), so every cell gets its own
// block of four consecutive candidates, one per possible quarter-turn
// amount including the no-op full rotation.
func decodeCandidate(index int) Move {
	return Move{Cell: index / 4, Turns: 1 + index%4}
}

// Apply returns a copy of board with move's cell rotated move.Turns
// times clockwise. board is never modified in place.
func Apply(board []pipes.Pipe, move Move) []pipes.Pipe {
	next := make([]pipes.Pipe, len(board))
	copy(next, board)
	p := next[move.Cell]
	for i := 0; i < move.Turns%4; i++ {
		p = p.Rotate()
	}
	next[move.Cell] = p
	return next
}

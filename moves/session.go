package moves

import (
	"context"
	"sort"
	"sync"

	"github.com/dcbrotsky/pipes.go/pipes"
)

/*

Session

A Session owns the move-picker's state across a run of an
interactive "AI solver": the tried-move memo, and the revision
counter that makes the at-most-one-oracle-call-in-flight invariant
enforceable.  Only one Pick call should be in flight at a time; a
second caller invoking Advance while the first is waiting on the
oracle causes the first's result to be discarded.

*/

// A Session coordinates move-picker calls against a changing board.
type Session struct {
	oracle Oracle

	mu       sync.Mutex
	memo     *memo
	revision int
}

// NewSession returns a Session that scores candidates with oracle.
func NewSession(oracle Oracle) *Session {
	return &Session{oracle: oracle, memo: newMemo()}
}

// Advance invalidates any Pick call currently waiting on the oracle.
// Callers must call it whenever the board changes for a reason other
// than a move this Session produced (a reset, an undo, a reload).
func (s *Session) Advance() {
	s.mu.Lock()
	s.revision++
	s.mu.Unlock()
}

func (s *Session) snapshot() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Pick runs one move-picker step: score every rotation candidate on
// board, skip the ones already tried at this board's fingerprint,
// and return the best-scoring candidate that remains. It fails fast
// if board has an empty cell, if the oracle errs or returns the
// wrong shape, or if Advance was called while the oracle call was in
// flight (a stale result, discarded rather than applied).
func (s *Session) Pick(ctx context.Context, board []pipes.Pipe) (Move, error) {
	for _, p := range board {
		if !p.Valid() {
			return Move{}, &pipes.Error{
				Scope:     pipes.MoveScope,
				Structure: pipes.ScopeStructure,
				Condition: pipes.InvalidBoardCondition,
				Values:    pipes.ErrorData{"cell has no assignment"},
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return Move{}, err
	}
	started := s.snapshot()
	vector := Vector(board)

	scores, err := s.oracle(ctx, vector)
	if err != nil {
		return Move{}, &pipes.Error{
			Scope:     pipes.MoveScope,
			Condition: pipes.OracleUnavailableCondition,
			Values:    pipes.ErrorData{err.Error()},
		}
	}
	if len(scores) != len(vector) {
		return Move{}, &pipes.Error{
			Scope:     pipes.MoveScope,
			Structure: pipes.AttributeValueStructure,
			Attribute: pipes.ScoreVectorAttribute,
			Condition: pipes.OracleShapeCondition,
			Values:    pipes.ErrorData{len(scores)},
		}
	}
	if s.snapshot() != started {
		return Move{}, &pipes.Error{Scope: pipes.MoveScope, Condition: pipes.StaleRevisionCondition}
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	fingerprint := Fingerprint(board)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revision != started {
		return Move{}, &pipes.Error{Scope: pipes.MoveScope, Condition: pipes.StaleRevisionCondition}
	}
	for _, idx := range order {
		if s.memo.has(fingerprint, idx) {
			continue
		}
		s.memo.add(fingerprint, idx)
		return decodeCandidate(idx), nil
	}
	return Move{}, &pipes.Error{Scope: pipes.MoveScope, Condition: pipes.MoveExhaustedCondition}
}

// Solved reports whether board satisfies all four core validators.
func Solved(n int, board []pipes.Pipe) bool {
	return pipes.Solved(n, board)
}

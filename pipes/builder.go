package pipes

import (
	"context"
	"fmt"
)

// MinSize and MaxSize bound the grid sizes this package will
// build a CSP for.  n=1 has no interacting constraints to speak
// of and is rejected at the interface; n>25 is rejected to keep
// the iterative DFS's stack depth (bounded by n²) reasonable.
const (
	MinSize = 2
	MaxSize = 25
)

// NewPipesCSP builds the CSP for an n x n pipes puzzle: one
// Variable per cell, a horizontal and vertical no-half-connections
// constraint for every adjacent pair, and one global no-cycles
// and one global connected constraint over all cells.
func NewPipesCSP(n int) (*CSP, error) {
	if n < MinSize || n > MaxSize {
		return nil, &Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Condition: condSizeOutOfRange(n),
			Attribute: SizeAttribute,
			Values:    ErrorData{n},
		}
	}
	g := Grid{N: n}
	csp := NewCSP(g)

	for i := 0; i < g.Size(); i++ {
		csp.AddVar(NewVariable(i, CellDomain(g, i)))
	}

	for i := 0; i < g.Size(); i++ {
		v := csp.VarAt(i)
		if right := g.Neighbor(i, Right); right >= 0 {
			csp.AddCon(NewHalfConnectionH(v, csp.VarAt(right)))
		}
		if down := g.Neighbor(i, Down); down >= 0 {
			csp.AddCon(NewHalfConnectionV(v, csp.VarAt(down)))
		}
	}

	csp.AddCon(NewNoCycles(g, csp.Vars))
	csp.AddCon(NewConnected(g, csp.Vars, func(candidates []*Variable) *Variable {
		return pickByFrontier(csp, candidates)
	}))

	return csp, nil
}

func condSizeOutOfRange(n int) ErrorCondition {
	if n < MinSize {
		return TooSmallCondition
	}
	return TooLargeCondition
}

// Generate builds a fresh CSP for an n x n board and runs the
// backtracking search, returning the first solution found (or
// all of them, up to opts.MaxSolutions).
func Generate(ctx context.Context, n int, opts SolveOptions) ([]string, error) {
	csp, err := NewPipesCSP(n)
	if err != nil {
		return nil, err
	}
	solutions, err := Solve(ctx, csp, opts)
	if err != nil {
		return solutions, err
	}
	if len(solutions) == 0 {
		return nil, &Error{
			Scope:     SearchScope,
			Structure: ScopeStructure,
			Condition: NoSolutionCondition,
			Values:    ErrorData{n},
			Message:   fmt.Sprintf("no solution found for a %dx%d board", n, n),
		}
	}
	return solutions, nil
}

package pipes

import (
	"context"
	"testing"
)

func TestAC3PropagatesHalfConnectionsFromOneAssignment(t *testing.T) {
	csp, err := NewPipesCSP(3)
	if err != nil {
		t.Fatalf("NewPipesCSP(3): %v", err)
	}
	v0 := csp.VarAt(0)
	csp.AssignVar(v0, Pipe{false, true, true, false}) // Right, Down

	log, wipedOut := AC3(csp, csp.ConstraintsOn(v0))
	if wipedOut {
		t.Fatalf("assigning a single corner cell should not wipe out any domain")
	}
	if len(log) == 0 {
		t.Fatalf("expected propagation to prune at least one neighbor's domain")
	}
	v1 := csp.VarAt(1) // right neighbor
	for _, p := range v1.Active {
		if !p.Open(Left) {
			t.Errorf("v1 active domain still has a shape without a Left opening: %v", p)
		}
	}
}

func TestAC3OnSolvedAssignmentPrunesNothing(t *testing.T) {
	solutions, err := Generate(context.Background(), 2, SolveOptions{})
	if err != nil {
		t.Fatalf("Generate(2): %v", err)
	}
	board, _, err := Decode(solutions[0])
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	csp, err := NewPipesCSP(2)
	if err != nil {
		t.Fatalf("NewPipesCSP(2): %v", err)
	}
	for i, v := range csp.Vars {
		csp.AssignVar(v, board[i])
	}
	var allCons []*Constraint
	allCons = append(allCons, csp.Cons...)
	log, wipedOut := AC3(csp, allCons)
	if wipedOut {
		t.Fatalf("AC3 on a solved assignment should never wipe out a domain")
	}
	if len(log) != 0 {
		t.Errorf("AC3 on a solved assignment pruned %d values, want 0", len(log))
	}
}

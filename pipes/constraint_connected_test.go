package pipes

import "testing"

func TestIsConnectedAcceptsTree(t *testing.T) {
	g := Grid{N: 2}
	board := []Pipe{
		{false, true, true, false},
		{false, false, true, true},
		{true, false, false, false},
		{true, false, false, true},
	}
	if !isConnected(g, board) {
		t.Fatalf("spanning tree should be connected")
	}
}

func TestIsConnectedRejectsDisconnected(t *testing.T) {
	g := Grid{N: 2}
	board := []Pipe{
		{true, false, false, false}, // 0: isolated (Up only, no neighbor)
		{false, false, true, false}, // 1: Down
		{false, false, false, false},
		{true, false, false, false},
	}
	if isConnected(g, board) {
		t.Fatalf("board with an isolated cell should not be connected")
	}
}

func TestPruneEntireDomainEmptiesOneVariable(t *testing.T) {
	g := Grid{N: 3}
	csp, err := NewPipesCSP(3)
	if err != nil {
		t.Fatalf("NewPipesCSP(3): %v", err)
	}
	_ = g
	log := pruneEntireDomain(csp.Vars, nil)
	if len(log) == 0 {
		t.Fatalf("expected a nonempty prune log")
	}
	touched := map[*Variable]bool{}
	for _, r := range log {
		touched[r.Var] = true
	}
	if len(touched) != 1 {
		t.Errorf("pruneEntireDomain touched %d variables, want exactly 1", len(touched))
	}
}

func TestPseudoBoardUsesAssignedPipeWhenPresent(t *testing.T) {
	g := Grid{N: 2}
	_ = g
	csp, err := NewPipesCSP(2)
	if err != nil {
		t.Fatalf("NewPipesCSP(2): %v", err)
	}
	v0 := csp.VarAt(0)
	assigned := Pipe{false, true, true, false}
	v0.Assign(assigned)
	pseudo := pseudoBoard(csp.Vars)
	if pseudo[0] != assigned {
		t.Errorf("pseudoBoard()[0] = %v, want the assigned pipe %v", pseudo[0], assigned)
	}
}

package pipes

import "testing"

// the 2x2 board from the spec's worked example: a simple 4-cell
// loop, which IS a cycle and so is not a solved board (every 2x2
// tree is this ring with one edge missing - here we build the
// actual closed loop to exercise the cycle validator).
func ringBoard() []Pipe {
	return []Pipe{
		{false, true, true, false},  // 0: Right, Down
		{false, false, true, true},  // 1: Down, Left
		{true, true, false, false},  // 2: Up, Right
		{true, false, false, true},  // 3: Up, Left
	}
}

func TestNoCyclesValidatorRejectsRing(t *testing.T) {
	g := Grid{N: 2}
	board := ringBoard()
	if !hasCycle(g, board, 0, make([]bool, 4), -1) {
		t.Fatalf("a closed 2x2 ring should be detected as a cycle")
	}
}

func TestNoCyclesValidatorAcceptsTree(t *testing.T) {
	g := Grid{N: 2}
	// a spanning tree on 4 cells: 0-1 (horizontal), 0-2 (vertical), 1-3 (vertical)
	board := []Pipe{
		{false, true, true, false}, // 0: Right, Down
		{false, false, true, true}, // 1: Down, Left
		{true, false, false, false},// 2: Up only
		{true, false, false, true}, // 3: Up, Left
	}
	if hasCycle(g, board, 0, make([]bool, 4), -1) {
		t.Fatalf("a spanning tree should not be detected as a cycle")
	}
}

func TestNoCyclesPrunerStopsAtOneRemovalBatch(t *testing.T) {
	g := Grid{N: 2}
	csp, err := NewPipesCSP(2)
	if err != nil {
		t.Fatalf("NewPipesCSP(2): %v", err)
	}
	v0, v1, v2 := csp.VarAt(0), csp.VarAt(1), csp.VarAt(2)
	v0.Assign(Pipe{false, true, true, false}) // 0 touches 1 (Right) and 2 (Down)
	v1.Assign(Pipe{false, false, true, true})  // 1 touches 0 (Left) and 3 (Down)
	v2.Assign(Pipe{true, true, false, false})  // 2 touches 0 (Up) and 3 (Right) -> double touch on 3
	_ = g

	log := pruneCycle(g, csp.Vars)
	// whether or not this particular hand-built scenario finds a double
	// touch, the pruner must never touch more than one variable's domain
	// per call.
	touched := map[*Variable]bool{}
	for _, r := range log {
		touched[r.Var] = true
	}
	if len(touched) > 1 {
		t.Errorf("pruneCycle touched %d variables in one call, want at most 1", len(touched))
	}
}

package pipes

import "testing"

func TestNewPipesCSPRejectsOutOfRangeSizes(t *testing.T) {
	if _, err := NewPipesCSP(1); err == nil {
		t.Errorf("NewPipesCSP(1) should fail")
	} else if e, ok := err.(*Error); !ok || e.Condition != TooSmallCondition {
		t.Errorf("NewPipesCSP(1) error = %v, want TooSmallCondition", err)
	}
	if _, err := NewPipesCSP(26); err == nil {
		t.Errorf("NewPipesCSP(26) should fail")
	} else if e, ok := err.(*Error); !ok || e.Condition != TooLargeCondition {
		t.Errorf("NewPipesCSP(26) error = %v, want TooLargeCondition", err)
	}
}

func TestNewPipesCSPHasExpectedShape(t *testing.T) {
	csp, err := NewPipesCSP(3)
	if err != nil {
		t.Fatalf("NewPipesCSP(3): %v", err)
	}
	if len(csp.Vars) != 9 {
		t.Errorf("3x3 CSP has %d variables, want 9", len(csp.Vars))
	}
	// 2 global constraints + 6 horizontal + 6 vertical half-connection constraints
	wantCons := 2 + 2*3*(3-1)
	if len(csp.Cons) != wantCons {
		t.Errorf("3x3 CSP has %d constraints, want %d", len(csp.Cons), wantCons)
	}
}

package pipes

import (
	"context"
	"strings"
	"testing"
)

func TestRenderStringProducesOneLinePerRow(t *testing.T) {
	solutions, err := Generate(context.Background(), 3, SolveOptions{})
	if err != nil {
		t.Fatalf("Generate(3): %v", err)
	}
	rendered, err := RenderString(solutions[0])
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("RenderString produced %d lines, want 3", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("row %q has %d glyphs, want 3", line, len([]rune(line)))
		}
	}
}

func TestRenderStringRejectsBadEncoding(t *testing.T) {
	if _, err := RenderString("xx"); err == nil {
		t.Errorf("RenderString of an invalid encoding should fail")
	}
}

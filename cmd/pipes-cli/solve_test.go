package main

import "testing"

func TestRunSolveGeneratesOwnBoard(t *testing.T) {
	solveBoard = ""
	solveSize = 3
	solveMaxMoves = 2000
	solveVerbose = false
	if err := runSolve(nil, nil); err != nil {
		t.Fatalf("runSolve failed: %v", err)
	}
}

func TestRunSolveTooFewMoves(t *testing.T) {
	solveBoard = ""
	solveSize = 3
	solveMaxMoves = 0
	solveVerbose = false
	if err := runSolve(nil, nil); err == nil {
		t.Errorf("Expected an error when max-moves is exhausted")
	}
}

func TestStartingBoardBadSize(t *testing.T) {
	if _, _, err := startingBoard(nil, "", 1); err == nil {
		t.Errorf("Expected an error for an out-of-range size")
	}
}

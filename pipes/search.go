// susen.go - a web-based Sudoku game and teaching tool.
// Copyright (C) 2015-2016 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package pipes

import (
	"context"
	"math/rand"
)

// SolveOptions controls the backtracking search.
type SolveOptions struct {
	// MaxSolutions stops the search once this many distinct
	// solutions have been found.  Zero means "find one".
	MaxSolutions int
	// Randomize shuffles variable-ordering ties and each newly
	// captured active domain.  Deterministic mode (the default)
	// always yields the same first solution for a given n.
	Randomize bool
	// Rand supplies randomness when Randomize is set.  If nil, a
	// package-local source is used.
	Rand *rand.Rand
}

// frame is one level of the iterative backtracking stack: the
// variable it's deciding, the active-domain snapshot captured
// when it was pushed, a cursor into that snapshot, and the AC-3
// log produced by the current trial assignment (nil until a
// trial has actually run).
type frame struct {
	v      *Variable
	domain []Pipe
	cursor int
	log    PruneLog
}

// Solve runs the iterative DFS backtracking search described by
// the "Ariadne's thread" frame stack: each frame owns the
// undo log for the trial it produced, so a pop only ever has to
// undo the frame directly below it.  It returns the canonical
// strings of every distinct solution found, up to
// opts.MaxSolutions (or just the first, if zero).
func Solve(ctx context.Context, csp *CSP, opts SolveOptions) ([]string, error) {
	solutionCap := opts.MaxSolutions
	if solutionCap <= 0 {
		solutionCap = 1
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	var solutions []string
	seen := make(map[string]bool)

	if len(csp.Vars) == 0 {
		return solutions, nil
	}

	first := selectVariable(csp, opts.Randomize, rng)
	stack := []*frame{openFrame(first, opts.Randomize, rng)}

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			unwind(csp, stack)
			return solutions, ctx.Err()
		default:
		}

		if len(solutions) >= solutionCap {
			unwind(csp, stack)
			return solutions, nil
		}

		top := stack[len(stack)-1]

		if len(csp.Unassigned) == 0 {
			if allValidate(csp) {
				s := Encode(csp.Assignment())
				if !seen[s] {
					seen[s] = true
					solutions = append(solutions, s)
				}
			}
			undoTrial(csp, top)
			top.cursor++
			continue
		}

		if top.cursor >= len(top.domain) {
			undoTrial(csp, top)
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			parent := stack[len(stack)-1]
			undoTrial(csp, parent)
			parent.cursor++
			continue
		}

		undoTrial(csp, top)
		value := top.domain[top.cursor]
		csp.AssignVar(top.v, value)
		log, wipedOut := AC3(csp, csp.ConstraintsOn(top.v))
		top.log = log
		if wipedOut {
			top.cursor++
			continue
		}
		if len(csp.Unassigned) == 0 {
			continue
		}
		next := selectVariable(csp, opts.Randomize, rng)
		stack = append(stack, openFrame(next, opts.Randomize, rng))
	}
	return solutions, nil
}

// undoTrial reverses frame f's current trial, if it has one: it
// undoes the AC-3 log that trial produced and unassigns f's
// variable.  It is idempotent - calling it on a frame with no
// live trial is a no-op - so callers never have to track whether
// a given frame still needs undoing.
func undoTrial(csp *CSP, f *frame) {
	if f.v.Assigned == nil {
		return
	}
	f.log.Undo()
	f.log = nil
	csp.UnassignVar(f.v)
}

// openFrame captures variable v's active domain into a new frame,
// shuffling the snapshot if randomize is set.
func openFrame(v *Variable, randomize bool, rng *rand.Rand) *frame {
	domain := v.ActiveDomain()
	if randomize {
		rng.Shuffle(len(domain), func(i, j int) {
			domain[i], domain[j] = domain[j], domain[i]
		})
	}
	return &frame{v: v, domain: domain}
}

// unwind undoes every frame's log, in top-to-bottom order, and
// unassigns every frame's variable, leaving the CSP as if the
// search had never run.  Used when the search stops early via
// cancellation or a reached solution cap.
func unwind(csp *CSP, stack []*frame) {
	for i := len(stack) - 1; i >= 0; i-- {
		undoTrial(csp, stack[i])
	}
}

// allValidate reports whether every constraint in the CSP
// accepts the current (fully assigned) board.  GAC should have
// already pruned soundly, so this is a sanity check, not the
// primary correctness mechanism.
func allValidate(csp *CSP) bool {
	for _, c := range csp.Cons {
		if !c.FullyAssigned() {
			return false
		}
		if c.Violated() {
			return false
		}
	}
	return true
}

// selectVariable implements the Manhattan-distance-to-frontier
// heuristic: among unassigned variables, pick the one closest to
// the frontier (unassigned cells adjacent to an assigned cell).
// With an empty frontier (nothing assigned yet), any unassigned
// variable is fine; location 0 is preferred for determinism.
// Ties are broken by enumeration order, or uniformly at random
// when randomize is set.
func selectVariable(csp *CSP, randomize bool, rng *rand.Rand) *Variable {
	frontier := computeFrontier(csp)

	type candidate struct {
		v    *Variable
		dist int
	}
	var candidates []candidate
	best := -1
	for _, v := range csp.Vars {
		if v.Assigned != nil {
			continue
		}
		d := distanceToFrontier(csp.Grid, v, frontier)
		if best < 0 || d < best {
			best = d
		}
		candidates = append(candidates, candidate{v: v, dist: d})
	}
	if len(candidates) == 0 {
		return nil
	}

	var tied []*Variable
	for _, c := range candidates {
		if c.dist == best {
			tied = append(tied, c.v)
		}
	}
	if !randomize {
		return tied[0]
	}
	return tied[rng.Intn(len(tied))]
}

// pickByFrontier applies the same Manhattan-distance-to-frontier
// heuristic used by variable ordering, restricted to candidates,
// so that the connectivity pruner's choice of "some unassigned
// variable" (see DESIGN.md, Open Question resolutions) follows the
// search's own distance heuristic rather than a hardcoded rule.
// Ties go to the earliest candidate, even when the search itself
// is randomized.
func pickByFrontier(csp *CSP, candidates []*Variable) *Variable {
	if len(candidates) == 0 {
		return nil
	}
	frontier := computeFrontier(csp)
	best := candidates[0]
	bestDist := distanceToFrontier(csp.Grid, best, frontier)
	for _, v := range candidates[1:] {
		d := distanceToFrontier(csp.Grid, v, frontier)
		if d < bestDist {
			best, bestDist = v, d
		}
	}
	return best
}

// computeFrontier returns the unassigned variables that neighbor
// an assigned variable.
func computeFrontier(csp *CSP) []*Variable {
	var frontier []*Variable
	seen := make(map[*Variable]bool)
	for _, v := range csp.Vars {
		if v.Assigned == nil {
			continue
		}
		ns := csp.Grid.Neighbors(v.Location)
		for _, loc := range ns {
			if loc < 0 {
				continue
			}
			n := csp.VarAt(loc)
			if n.Assigned == nil && !seen[n] {
				seen[n] = true
				frontier = append(frontier, n)
			}
		}
	}
	return frontier
}

// distanceToFrontier returns the minimum Manhattan distance from
// v to any variable in frontier, or 0 if frontier is empty (so
// that, with nothing assigned yet, every candidate ties and
// location order / randomness breaks the tie).
func distanceToFrontier(g Grid, v *Variable, frontier []*Variable) int {
	if len(frontier) == 0 {
		return 0
	}
	vr, vc := g.Row(v.Location), g.Col(v.Location)
	best := -1
	for _, f := range frontier {
		fr, fc := g.Row(f.Location), g.Col(f.Location)
		d := abs(vr-fr) + abs(vc-fc)
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

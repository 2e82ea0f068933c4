package pipes

// NewConnected builds the global "connected" constraint over
// every variable on the grid: the confirmed connections of a
// fully assigned board must reach every cell from cell 0.
func NewConnected(g Grid, vars []*Variable, order VariablePicker) *Constraint {
	c := &Constraint{
		Name:  "connected",
		Scope: vars,
	}
	c.Validate = func(a []Pipe) bool {
		return isConnected(g, a)
	}
	c.Pruner = func(vars []*Variable) PruneLog {
		return pruneConnectivity(g, vars, order)
	}
	return c
}

// isConnected reports whether a fully-assigned board's confirmed
// connections reach every cell starting from cell 0.
func isConnected(g Grid, board []Pipe) bool {
	n := len(board)
	visited := make([]bool, n)
	stack := []int{0}
	visited[0] = true
	count := 1
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		conn := g.Connections(curr, board)
		for d := Up; d <= Left; d++ {
			if !conn[d] {
				continue
			}
			adj := g.Neighbor(curr, d)
			if adj >= 0 && !visited[adj] {
				visited[adj] = true
				count++
				stack = append(stack, adj)
			}
		}
	}
	return count == n
}

// pseudoBoard builds the "best possible" over-approximation of
// the board: assigned cells supply their assigned pipe; unassigned
// cells supply the direction-wise OR of their active domain.
func pseudoBoard(vars []*Variable) []Pipe {
	board := make([]Pipe, len(vars))
	byLoc := make(map[int]*Variable, len(vars))
	for _, v := range vars {
		byLoc[v.Location] = v
	}
	for loc, v := range byLoc {
		if v.Assigned != nil {
			board[loc] = *v.Assigned
			continue
		}
		var p Pipe
		for _, cand := range v.Active {
			for d := Up; d <= Left; d++ {
				if cand.Open(d) {
					p[d] = true
				}
			}
		}
		board[loc] = p
	}
	return board
}

// A VariablePicker chooses one variable from a slice of
// candidates, for policies that otherwise have no principled way
// to break a tie (the connectivity pruner's "some unassigned
// variable" choice). builder.go supplies a closure over
// search.go's pickByFrontier, which satisfies this signature.
type VariablePicker func(candidates []*Variable) *Variable

// firstUnassigned is the default VariablePicker: the unassigned
// variable with the lowest location index. Deterministic.
func firstUnassigned(candidates []*Variable) *Variable {
	var best *Variable
	for _, v := range candidates {
		if best == nil || v.Location < best.Location {
			best = v
		}
	}
	return best
}

// pruneConnectivity implements spec section 4.3.3: build the
// pseudo-assignment; if it's not connected, the partial
// assignment can never extend to a connected solution, so reject
// the entire active domain of some unassigned variable (chosen
// by order, or by location if order is nil) to force backtracking.
// Otherwise, walk degree-1 ("dead-end") paths in the
// pseudo-assignment and require every unassigned cell on such a
// walk to keep facing back the way it came.
func pruneConnectivity(g Grid, vars []*Variable, order VariablePicker) PruneLog {
	pseudo := pseudoBoard(vars)
	if !isConnected(g, pseudo) {
		return pruneEntireDomain(vars, order)
	}
	return pruneDeadEnds(g, vars, pseudo)
}

// pruneEntireDomain empties the active domain of one unassigned
// variable, chosen by order (falling back to lowest location).
func pruneEntireDomain(vars []*Variable, order VariablePicker) PruneLog {
	var candidates []*Variable
	for _, v := range vars {
		if v.Assigned == nil && len(v.Active) > 0 {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	pick := order
	if pick == nil {
		pick = firstUnassigned
	}
	target := pick(candidates)
	if target == nil {
		target = firstUnassigned(candidates)
	}
	var log PruneLog
	for _, p := range newPipesetCopy(target.Active) {
		if ok, at := target.Remove(p); ok {
			log = append(log, PruneRecord{Var: target, At: at, Val: p})
		}
	}
	return log
}

// pruneDeadEnds walks every maximal degree-1 path in the
// pseudo-assignment's connection graph.  A cell with exactly one
// confirmed connection under the pseudo-assignment is a dead end;
// any unassigned cell along such a walk must keep an opening back
// toward the step it arrived from, since the walk cannot branch
// and dangling ends are never part of a connected tree.
func pruneDeadEnds(g Grid, vars []*Variable, pseudo []Pipe) PruneLog {
	byLoc := make(map[int]*Variable, len(vars))
	for _, v := range vars {
		byLoc[v.Location] = v
	}
	n := len(vars)
	for start := 0; start < n; start++ {
		conn := g.Connections(start, pseudo)
		degree, arriveDir := 0, Up
		for d := Up; d <= Left; d++ {
			if conn[d] {
				degree++
				arriveDir = d
			}
		}
		if degree != 1 {
			continue
		}
		curr, cameFrom := start, -1
		for {
			v := byLoc[curr]
			if v.Assigned == nil {
				want := arriveDir
				if curr != start {
					want = arriveDir.Opposite()
				}
				if log := removeWithoutOpening(v, want); len(log) > 0 {
					return log
				}
			}
			c := g.Connections(curr, pseudo)
			next, nextDir, count := -1, Up, 0
			for d := Up; d <= Left; d++ {
				if !c[d] {
					continue
				}
				adj := g.Neighbor(curr, d)
				if adj == cameFrom {
					continue
				}
				next, nextDir, count = adj, d, count+1
			}
			if count != 1 || next < 0 {
				break
			}
			cameFrom, curr, arriveDir = curr, next, nextDir
		}
	}
	return nil
}

// removeWithoutOpening removes every pipe from v's active domain
// that does not have an opening in direction want.
func removeWithoutOpening(v *Variable, want Direction) PruneLog {
	var log PruneLog
	for _, p := range newPipesetCopy(v.Active) {
		if !p.Open(want) {
			if ok, at := v.Remove(p); ok {
				log = append(log, PruneRecord{Var: v, At: at, Val: p})
			}
		}
	}
	return log
}

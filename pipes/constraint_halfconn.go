package pipes

import "fmt"

// NewHalfConnectionH builds the binary "no half-connections"
// constraint between a cell and its right neighbor: the cell's
// Right opening and the neighbor's Left opening must agree.
func NewHalfConnectionH(left, right *Variable) *Constraint {
	c := &Constraint{
		Name:  fmt.Sprintf("no half-connections horizontal {%d, %d}", left.Location, right.Location),
		Scope: []*Variable{left, right},
	}
	c.Validate = func(a []Pipe) bool {
		return a[0].Open(Right) == a[1].Open(Left)
	}
	c.Pruner = func(vars []*Variable) PruneLog {
		return pruneHalfConnection(vars[0], vars[1], Right, Left)
	}
	return c
}

// NewHalfConnectionV builds the binary "no half-connections"
// constraint between a cell and the neighbor below it: the
// cell's Down opening and the neighbor's Up opening must agree.
func NewHalfConnectionV(top, bottom *Variable) *Constraint {
	c := &Constraint{
		Name:  fmt.Sprintf("no half-connections vertical {%d, %d}", top.Location, bottom.Location),
		Scope: []*Variable{top, bottom},
	}
	c.Validate = func(a []Pipe) bool {
		return a[0].Open(Down) == a[1].Open(Up)
	}
	c.Pruner = func(vars []*Variable) PruneLog {
		return pruneHalfConnection(vars[0], vars[1], Down, Up)
	}
	return c
}

// pruneHalfConnection removes, from the active domain of
// whichever of a/b is still unassigned, every pipe whose opening
// on the shared edge (dirA for a, dirB for b) disagrees with the
// assigned side's opening on that edge.  It only prunes when exactly one side is assigned:
// with neither assigned there's nothing to compare against, and
// with both assigned there's nothing left to prune.
func pruneHalfConnection(a, b *Variable, dirA, dirB Direction) PruneLog {
	var log PruneLog
	switch {
	case a.Assigned != nil && b.Assigned == nil:
		want := a.Assigned.Open(dirA)
		log = removeDisagreeing(b, dirB, want)
	case b.Assigned != nil && a.Assigned == nil:
		want := b.Assigned.Open(dirB)
		log = removeDisagreeing(a, dirA, want)
	}
	return log
}

// removeDisagreeing removes from v's active domain every pipe
// whose opening in direction d is not want.
func removeDisagreeing(v *Variable, d Direction, want bool) PruneLog {
	var log PruneLog
	for _, p := range newPipesetCopy(v.Active) {
		if p.Open(d) != want {
			if ok, at := v.Remove(p); ok {
				log = append(log, PruneRecord{Var: v, At: at, Val: p})
			}
		}
	}
	return log
}

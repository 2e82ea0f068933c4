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

/*

CSP model: variables, active domains, constraints

*/

// a pipeset is an ordered, duplicate-free list of Pipes.  Like
// the classic intset, removal preserves the relative order of
// the survivors, because undo has to restore that exact order -
// a bitmask domain can't do that.
type pipeset []Pipe

func newPipesetCopy(in pipeset) pipeset {
	if in == nil {
		return nil
	}
	out := make(pipeset, len(in))
	copy(out, in)
	return out
}

// find returns the index of p in the set, or -1.
func (ps pipeset) find(p Pipe) int {
	for i, q := range ps {
		if q == p {
			return i
		}
	}
	return -1
}

// remove deletes p from the set, reporting whether it was
// present.  It preserves the relative order of the remaining
// elements.
func (ps *pipeset) remove(p Pipe) bool {
	i := ps.find(p)
	if i < 0 {
		return false
	}
	*ps = append((*ps)[:i], (*ps)[i+1:]...)
	return true
}

// insertAt restores p to the set at position i, shifting
// later elements right.  Used to undo a remove in order.
func (ps *pipeset) insertAt(i int, p Pipe) {
	*ps = append(*ps, Pipe{})
	copy((*ps)[i+1:], (*ps)[i:])
	(*ps)[i] = p
}

// A Variable is one grid cell: its location, its full domain
// (fixed at construction), its active domain (shrinks under
// pruning, restored by undo), and its assignment, if any.
type Variable struct {
	Location int
	Full     pipeset
	Active   pipeset
	Assigned *Pipe
}

// NewVariable builds a Variable for a cell, with a full and
// active domain equal to the boundary-filtered base domain.
func NewVariable(loc int, domain []Pipe) *Variable {
	return &Variable{
		Location: loc,
		Full:     newPipesetCopy(domain),
		Active:   newPipesetCopy(domain),
	}
}

// ActiveDomain returns a copy of the variable's active domain.
func (v *Variable) ActiveDomain() []Pipe {
	return newPipesetCopy(v.Active)
}

// Assignment returns the variable's current assignment and
// whether it is assigned.
func (v *Variable) Assignment() (Pipe, bool) {
	if v.Assigned == nil {
		return Pipe{}, false
	}
	return *v.Assigned, true
}

// Assign sets the variable's assignment.  It does not touch the
// active domain; callers that want the domain pinned to a single
// value call Prune/Remove separately.
func (v *Variable) Assign(p Pipe) {
	cp := p
	v.Assigned = &cp
}

// Unassign clears the variable's assignment.
func (v *Variable) Unassign() {
	v.Assigned = nil
}

// Remove deletes p from the variable's active domain, reporting
// whether it was present and, if so, the index it was removed
// from (needed to undo in order).
func (v *Variable) Remove(p Pipe) (removed bool, at int) {
	at = v.Active.find(p)
	if at < 0 {
		return false, -1
	}
	v.Active.remove(p)
	return true, at
}

// Restore re-inserts p into the active domain at position at,
// undoing a prior Remove.
func (v *Variable) Restore(at int, p Pipe) {
	v.Active.insertAt(at, p)
}

// A PruneRecord is one removal performed by a Constraint's
// Prune, in a form that can be undone in order.
type PruneRecord struct {
	Var *Variable
	At  int
	Val Pipe
}

// A PruneLog is every removal performed by one Prune call, in
// the order they happened.  Undo must replay it in reverse.
type PruneLog []PruneRecord

// Undo restores every removal in the log, in reverse order, so
// that domains that had several removals come back in their
// original relative order.
func (log PruneLog) Undo() {
	for i := len(log) - 1; i >= 0; i-- {
		r := log[i]
		r.Var.Restore(r.At, r.Val)
	}
}

// A Constraint is a named predicate over a scope of Variables,
// plus a pruner that can remove values doomed to violate it.
type Constraint struct {
	Name     string
	Scope    []*Variable
	Validate func(assignment []Pipe) bool
	Pruner   func(vars []*Variable) PruneLog
}

// Prune runs the constraint's pruner over its own scope and
// returns the resulting log.  A Constraint with no Pruner never
// removes anything.
func (c *Constraint) Prune() PruneLog {
	if c.Pruner == nil {
		return nil
	}
	return c.Pruner(c.Scope)
}

// FullyAssigned reports whether every variable in the
// constraint's scope is assigned.
func (c *Constraint) FullyAssigned() bool {
	for _, v := range c.Scope {
		if v.Assigned == nil {
			return false
		}
	}
	return true
}

// Violated reports whether the constraint's scope, fully
// assigned, fails its Validate predicate.  Callers must check
// FullyAssigned first if a partial assignment is possible.
func (c *Constraint) Violated() bool {
	vals := make([]Pipe, len(c.Scope))
	for i, v := range c.Scope {
		vals[i] = *v.Assigned
	}
	return !c.Validate(vals)
}

// A CSP is a pipes-puzzle constraint satisfaction problem: a
// fixed set of Variables (one per grid cell) and Constraints
// (binary no-half-connections plus the two global constraints),
// with a lookup from Variable to the Constraints that mention it.
type CSP struct {
	Grid        Grid
	Vars        []*Variable
	Cons        []*Constraint
	varCons     map[*Variable][]*Constraint
	Unassigned  map[*Variable]bool
}

// NewCSP builds an empty CSP over the given grid; callers add
// variables and constraints with AddVar/AddCon.
func NewCSP(g Grid) *CSP {
	return &CSP{
		Grid:       g,
		varCons:    make(map[*Variable][]*Constraint),
		Unassigned: make(map[*Variable]bool),
	}
}

// AddVar adds v to the CSP's variable list and marks it unassigned.
func (csp *CSP) AddVar(v *Variable) {
	csp.Vars = append(csp.Vars, v)
	csp.Unassigned[v] = true
}

// AddCon adds c to the CSP's constraint list and indexes it by
// each variable in its scope.
func (csp *CSP) AddCon(c *Constraint) {
	csp.Cons = append(csp.Cons, c)
	for _, v := range c.Scope {
		csp.varCons[v] = append(csp.varCons[v], c)
	}
}

// ConstraintsOn returns the constraints whose scope includes v.
func (csp *CSP) ConstraintsOn(v *Variable) []*Constraint {
	return csp.varCons[v]
}

// VarAt returns the variable at location loc.  It relies on the
// CSP's variables being built in location order, which every
// constructor in this package guarantees.
func (csp *CSP) VarAt(loc int) *Variable {
	return csp.Vars[loc]
}

// AssignVar assigns p to v and moves it from Unassigned.
func (csp *CSP) AssignVar(v *Variable, p Pipe) {
	v.Assign(p)
	delete(csp.Unassigned, v)
}

// UnassignVar clears v's assignment and returns it to Unassigned.
func (csp *CSP) UnassignVar(v *Variable) {
	v.Unassign()
	csp.Unassigned[v] = true
}

// Assignment returns the full board, in Vars order.  All
// variables must be assigned.
func (csp *CSP) Assignment() []Pipe {
	board := make([]Pipe, len(csp.Vars))
	for i, v := range csp.Vars {
		board[i] = *v.Assigned
	}
	return board
}

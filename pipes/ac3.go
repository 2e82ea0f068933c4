package pipes

// conQueue is a FIFO of constraints with O(1) membership testing,
// so a constraint already waiting to run isn't enqueued twice.
type conQueue struct {
	items  []*Constraint
	queued map[*Constraint]bool
}

func newConQueue(seed []*Constraint) *conQueue {
	q := &conQueue{queued: make(map[*Constraint]bool, len(seed))}
	for _, c := range seed {
		q.push(c)
	}
	return q
}

func (q *conQueue) push(c *Constraint) {
	if q.queued[c] {
		return
	}
	q.items = append(q.items, c)
	q.queued[c] = true
}

func (q *conQueue) pop() *Constraint {
	c := q.items[0]
	q.items = q.items[1:]
	delete(q.queued, c)
	return c
}

func (q *conQueue) empty() bool {
	return len(q.items) == 0
}

// AC3 runs generalized arc consistency starting from seed, the
// constraints whose scope was touched by the triggering
// assignment.  It pops a constraint, runs its pruner, and for any
// variable whose active domain shrank, re-enqueues every
// constraint mentioning that variable that isn't already queued.
// It returns the full log of every removal performed, in order,
// and stops early - without draining the queue - the moment any
// active domain is emptied, since the caller is about to
// backtrack and undo everything anyway.
func AC3(csp *CSP, seed []*Constraint) (log PruneLog, wipedOut bool) {
	q := newConQueue(seed)
	for !q.empty() {
		c := q.pop()
		removed := c.Prune()
		if len(removed) == 0 {
			continue
		}
		log = append(log, removed...)
		touchedVars := make(map[*Variable]bool)
		for _, r := range removed {
			touchedVars[r.Var] = true
			if len(r.Var.Active) == 0 {
				return log, true
			}
		}
		for v := range touchedVars {
			for _, mentions := range csp.ConstraintsOn(v) {
				q.push(mentions)
			}
		}
	}
	return log, false
}

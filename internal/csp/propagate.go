package csp

import "svw.info/kropki/internal/domain"

// Status is the outcome of a propagation pass. Wipeout means some domain
// emptied; the search driver treats it as a dead branch, never as a fault.
type Status int

const (
	Consistent Status = iota
	Wipeout
)

// NoVar as the trigger runs a pass over every constraint. Used for the
// initial propagation before any search decision.
const NoVar = VarID(-1)

// Propagate dispatches to the selected propagator. The variant set is
// closed; there is no open-ended registration.
func Propagate(s *Store, p domain.Propagator, last VarID) Status {
	if p == domain.GAC {
		return gac(s, last)
	}
	return forwardCheck(s, last)
}

// forwardCheck restores consistency around the just-assigned variable
// only. For every constraint touching it, values incompatible with the
// determined members are pruned from the undetermined ones. It does not
// propagate transitively.
func forwardCheck(s *Store, last VarID) Status {
	cons := allConstraints(s.graph)
	if last != NoVar {
		cons = s.graph.Neighbors(last)
	}
	for _, ci := range cons {
		if revise(s, ci) == Wipeout {
			return Wipeout
		}
	}
	return Consistent
}

// revise prunes every undetermined variable of constraint ci against the
// determined ones, and detects violations among the determined members
// themselves (two equal givens in a row, a broken dot between two
// singletons).
func revise(s *Store, ci int) Status {
	c := &s.graph.Cons[ci]
	if c.Kind == AllDiff {
		var seen mask
		for _, u := range c.Vars {
			if x, ok := s.Determined(u); ok {
				if seen.has(x) {
					return Wipeout
				}
				seen |= bitOf(x)
			}
		}
		for _, u := range c.Vars {
			if _, ok := s.Determined(u); ok {
				continue
			}
			for _, y := range s.Remaining(u) {
				if seen.has(y) && s.Prune(u, y) {
					return Wipeout
				}
			}
		}
		return Consistent
	}

	a, b := c.Vars[0], c.Vars[1]
	for _, pair := range [2][2]VarID{{a, b}, {b, a}} {
		x, ok := s.Determined(pair[0])
		if !ok {
			continue
		}
		if y, ok := s.Determined(pair[1]); ok {
			if !dotRelated(c.Kind, x, y) {
				return Wipeout
			}
			continue
		}
		for _, y := range s.Remaining(pair[1]) {
			if !dotRelated(c.Kind, x, y) && s.Prune(pair[1], y) {
				return Wipeout
			}
		}
	}
	return Consistent
}

// gac enforces generalized arc consistency: a work queue of constraints
// is drained to fixpoint, re-enqueueing the other constraints of any
// variable whose domain changed. Subsumes forward checking in pruning
// power at a higher per-step cost.
func gac(s *Store, last VarID) Status {
	g := s.graph
	queued := make([]bool, len(g.Cons))
	var queue []int
	enqueue := func(ci int) {
		if !queued[ci] {
			queued[ci] = true
			queue = append(queue, ci)
		}
	}
	if last == NoVar {
		for ci := range g.Cons {
			enqueue(ci)
		}
	} else {
		for _, ci := range g.Neighbors(last) {
			enqueue(ci)
		}
	}

	for len(queue) > 0 {
		ci := queue[0]
		queue = queue[1:]
		queued[ci] = false
		c := &g.Cons[ci]
		for _, u := range c.Vars {
			changed := false
			for _, y := range s.Remaining(u) {
				if hasSupport(s, ci, u, y) {
					continue
				}
				if s.Prune(u, y) {
					return Wipeout
				}
				changed = true
			}
			if changed {
				for _, other := range g.Neighbors(u) {
					if other != ci {
						enqueue(other)
					}
				}
			}
		}
	}
	return Consistent
}

// hasSupport reports whether value y for variable u can still be part of
// a satisfying assignment of constraint ci. For dots the partner must
// hold a related value; for all-different groups y loses support once
// another member is pinned to it.
func hasSupport(s *Store, ci int, u VarID, y uint8) bool {
	c := &s.graph.Cons[ci]
	if c.Kind == AllDiff {
		for _, w := range c.Vars {
			if w == u {
				continue
			}
			if x, ok := s.Determined(w); ok && x == y {
				return false
			}
		}
		return true
	}
	partner := c.Vars[0]
	if partner == u {
		partner = c.Vars[1]
	}
	for _, z := range s.Remaining(partner) {
		if dotRelated(c.Kind, y, z) {
			return true
		}
	}
	return false
}

func allConstraints(g *Graph) []int {
	out := make([]int, len(g.Cons))
	for i := range out {
		out[i] = i
	}
	return out
}

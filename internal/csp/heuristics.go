package csp

import "sort"

// nextVariable selects the next undetermined variable, or false when
// every domain is a singleton. With heuristics enabled it applies MRV
// (smallest domain first), breaking ties by degree (most constraints
// still touching another undetermined variable), then by row-major
// position. Disabled, it returns the first undetermined variable in
// row-major order. The tie-break order is a contract: results are
// deterministic for a given input.
func nextVariable(s *Store, heuristics bool) (VarID, bool) {
	best := NoVar
	bestSize, bestDegree := 0, 0
	for i := range s.graph.Vars {
		v := VarID(i)
		if _, ok := s.Determined(v); ok {
			continue
		}
		if !heuristics {
			return v, true
		}
		size := s.Size(v)
		if best != NoVar && size > bestSize {
			continue
		}
		deg := degree(s, v)
		if best == NoVar || size < bestSize || deg > bestDegree {
			best, bestSize, bestDegree = v, size, deg
		}
	}
	return best, best != NoVar
}

// degree counts the constraints of v that still involve at least one
// other undetermined variable.
func degree(s *Store, v VarID) int {
	n := 0
	for _, ci := range s.graph.Neighbors(v) {
		for _, u := range s.graph.Scope(ci) {
			if u == v {
				continue
			}
			if _, ok := s.Determined(u); !ok {
				n++
				break
			}
		}
	}
	return n
}

// orderValues returns v's candidates in trial order. With heuristics
// enabled it applies LCV: candidates are ordered by how many values an
// assignment would eliminate from undetermined neighbor domains,
// fewest first, ties broken by natural value order. The lookahead never
// mutates the store. Disabled, candidates come back in ascending order.
func orderValues(s *Store, v VarID, heuristics bool) []uint8 {
	values := s.Remaining(v)
	if !heuristics || len(values) < 2 {
		return values
	}
	cost := make(map[uint8]int, len(values))
	for _, x := range values {
		cost[x] = eliminationCount(s, v, x)
	}
	sort.SliceStable(values, func(i, j int) bool {
		return cost[values[i]] < cost[values[j]]
	})
	return values
}

// eliminationCount is the LCV lookahead: how many candidate values
// across undetermined neighbors of v would assigning v=x rule out.
func eliminationCount(s *Store, v VarID, x uint8) int {
	n := 0
	for _, ci := range s.graph.Neighbors(v) {
		c := &s.graph.Cons[ci]
		for _, u := range c.Vars {
			if u == v {
				continue
			}
			if _, ok := s.Determined(u); ok {
				continue
			}
			if c.Kind == AllDiff {
				if s.Has(u, x) {
					n++
				}
				continue
			}
			for _, y := range s.Remaining(u) {
				if !dotRelated(c.Kind, x, y) {
					n++
				}
			}
		}
	}
	return n
}

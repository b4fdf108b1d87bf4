package extglob

// state represents a possible state of a state machine.
type state struct {
	// Out contains all possible transitions out of this state, in order of
	// preference.
	Out []edge

	// Accept is whether the state is a fully-matched state.
	Accept bool
}

// edge represents a state transition inside the state machine.
type edge struct {
	// Expr consumes some input; if it can, the edge can be followed.
	// If Expr is nil, then the edge is followed without consuming anything.
	Expr expression

	// State is the machine state that the machine transitions into when Expr
	// is satisfied.
	State *state
}

// addEdge appends an edge from s to a new state, and returns the new state.
func (s *state) addEdge(e expression) *state {
	next := &state{}
	s.Out = append(s.Out, edge{Expr: e, State: next})
	return next
}

// reduce tries to safely eliminate any edges with nil expression that it can
// find. Accepting states and self-loops are never bypassed.
func reduce(initial *state) {
	seen := make(map[*state]bool)
	q := []*state{initial}
	for len(q) > 0 {
		s := q[0]
		q = q[1:]

		if seen[s] {
			continue
		}
		seen[s] = true

		for i := range s.Out {
			e := &s.Out[i]

			// These optimisations only apply if the destination state has
			// out-degree 1. hops stops epsilon cycles.
			hops := make(map[*state]bool)
			for !hops[e.State] {
				hops[e.State] = true
				next := e.State
				if len(next.Out) != 1 || next.Accept || next.Out[0].State == next {
					break
				}

				// If e has nil expression, then replace both the expression and
				// target of e with the next edge.
				if e.Expr == nil {
					*e = next.Out[0]
					continue
				}

				// If the next edge has nil expression, then replace the target
				// state of e with the target of that subsequent edge.
				if next.Out[0].Expr == nil {
					e.State = next.Out[0].State
					continue
				}

				break
			}
		}

		for _, e := range s.Out {
			if !seen[e.State] {
				q = append(q, e.State)
			}
		}
	}
}

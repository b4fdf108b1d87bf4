package extglob

// matcher holds one candidate being matched.
type matcher struct {
	input []rune
	cfg   *config
}

// position is a state of the machine at an offset into the input.
type position struct {
	s *state
	i int
}

// run reports whether the machine starting at initial can consume exactly
// input[lo:hi] and finish in an accepting state.
// It is a depth-first search with an explicit stack, trying edges in order
// of preference. Each position is visited at most once.
func (m *matcher) run(initial *state, lo, hi int) bool {
	visited := make(map[position]bool)
	stack := []position{{initial, lo}}
	var nexts []position
	var ends []int
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[p] {
			continue
		}
		visited[p] = true

		if p.s.Accept && p.i == hi {
			return true
		}

		nexts = nexts[:0]
		for _, e := range p.s.Out {
			if e.Expr == nil {
				nexts = append(nexts, position{e.State, p.i})
				continue
			}
			ends = e.Expr.advance(m, p.i, hi, ends[:0])
			for _, j := range ends {
				nexts = append(nexts, position{e.State, j})
			}
		}
		// Push in reverse so the most preferred is popped first.
		for k := len(nexts) - 1; k >= 0; k-- {
			if !visited[nexts[k]] {
				stack = append(stack, nexts[k])
			}
		}
	}
	return false
}

// segmentStart reports whether offset i begins a path segment.
func (m *matcher) segmentStart(i int) bool {
	return i == 0 || m.input[i-1] == '/'
}

// hidden reports whether input[i] is a leading dot that wildcards may not
// match.
func (m *matcher) hidden(i int) bool {
	return !m.cfg.matchLeadingDot && m.input[i] == '.' && m.segmentStart(i)
}

// indexSeparator returns the offset of the first separator in input[i:hi], or
// -1.
func (m *matcher) indexSeparator(i, hi int) int {
	for j := i; j < hi; j++ {
		if m.input[j] == '/' {
			return j
		}
	}
	return -1
}

// Match reports whether the candidate matches the program.
func (p *program) match(m *matcher) bool {
	if p.allLiteral {
		if len(p.literal) != len(m.input) {
			return false
		}
		return len(dotLiteralExp(p.literal).advance(m, 0, len(m.input), nil)) == 1
	}
	if p.initial != nil {
		return m.run(p.initial, 0, len(m.input))
	}

	// Segmented: separators line up one-to-one.
	seps := 0
	for _, r := range m.input {
		if r == '/' {
			seps++
		}
	}
	if seps != len(p.segments)-1 {
		return false
	}
	lo := 0
	for _, seg := range p.segments {
		hi := m.indexSeparator(lo, len(m.input))
		if hi < 0 {
			hi = len(m.input)
		}
		if !m.run(seg, lo, hi) {
			return false
		}
		lo = hi + 1
	}
	return true
}

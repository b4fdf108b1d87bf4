package extglob

// program is the compiled form of one brace expansion of a pattern. Exactly
// one of these applies:
//   - allLiteral: the pattern has no wildcards, and is compared directly
//   - segments: nothing but the separators in the pattern can match a
//     separator, so each segment has its own machine
//   - initial: a single machine for the whole candidate
type program struct {
	allLiteral bool
	literal    literalExp
	segments   []*state
	initial    *state
}

// compile converts a parsed pattern into a program.
func compile(root sequence, cfg *config) *program {
	if lit, ok := literalPath(root); ok {
		return &program{allLiteral: true, literal: lit}
	}

	if segs, ok := splitSegments(root, cfg); ok {
		p := &program{}
		for _, seg := range segs {
			p.segments = append(p.segments, compileMachine(seg, cfg))
		}
		return p
	}
	return &program{initial: compileMachine(root, cfg)}
}

// literalPath returns the text of the pattern if it consists only of
// literals and separators.
func literalPath(root sequence) (literalExp, bool) {
	lit := literalExp{}
	for _, n := range root {
		switch n := n.(type) {
		case literal:
			lit = append(lit, n...)
		case pathBoundary:
			lit = append(lit, '/')
		default:
			return nil, false
		}
	}
	return lit, true
}

// splitSegments splits the pattern at its top-level separators, if no other
// element can consume a separator.
func splitSegments(root sequence, cfg *config) ([]sequence, bool) {
	segs := []sequence{nil}
	for _, n := range root {
		if _, ok := n.(pathBoundary); ok {
			segs = append(segs, nil)
			continue
		}
		if consumesSeparator(n, cfg) {
			return nil, false
		}
		segs[len(segs)-1] = append(segs[len(segs)-1], n)
	}
	return segs, true
}

// consumesSeparator reports whether n could match a string containing a
// separator.
func consumesSeparator(n node, cfg *config) bool {
	switch n := n.(type) {
	case literal:
		for _, r := range n {
			if r == '/' {
				return true
			}
		}
	case globStarRun:
		return cfg.globStar
	case pathBoundary:
		return true
	case *charClass:
		return !n.Negated && n.contains('/', true)
	case *quantified:
		return consumesSeparator(n.Atom, cfg)
	case *group:
		for _, alt := range n.Alts {
			for _, c := range alt {
				if consumesSeparator(c, cfg) {
					return true
				}
			}
		}
	}
	return false
}

// crossesSeparators reports whether any alternative contains a path
// boundary, at any depth.
func crossesSeparators(alts []sequence) bool {
	for _, alt := range alts {
		for _, n := range alt {
			switch n := n.(type) {
			case pathBoundary:
				return true
			case *group:
				if crossesSeparators(n.Alts) {
					return true
				}
			case *quantified:
				if crossesSeparators([]sequence{{n.Atom}}) {
					return true
				}
			}
		}
	}
	return false
}

// compileMachine builds, finalises and reduces the machine for a sequence.
func compileMachine(seq sequence, cfg *config) *state {
	initial := &state{}
	compileSequence(initial, seq, true, cfg).Accept = true
	reduce(initial)
	return initial
}

// compileSequence appends the machine for seq after from, and returns the
// state at which it ends. atStart is whether seq begins a pattern segment:
// only a literal there may match a leading dot.
func compileSequence(from *state, seq sequence, atStart bool, cfg *config) (end *state) {
	end = from
	for i := 0; i < len(seq); i++ {
		segStart := atStart
		atStart = false

		switch n := seq[i].(type) {
		case literal:
			if segStart && len(n) > 0 && n[0] == '.' {
				end = end.addEdge(dotLiteralExp(n))
				break
			}
			end = end.addEdge(literalExp(n))

		case anyChar:
			end = end.addEdge(questionExp{})

		case anyRun:
			end = compileStar(end)

		case globStarRun:
			if !cfg.globStar {
				end = compileStar(end)
				break
			}
			// A ** followed by a separator absorbs it.
			_, trailing := nextNode(seq, i).(pathBoundary)
			end = end.addEdge(globStarExp{trailing: trailing})
			if trailing {
				i++
				atStart = true
			}

		case *charClass:
			end = end.addEdge(classExp{n})

		case pathBoundary:
			end = end.addEdge(separatorExp{})
			atStart = true

		case *group:
			if n.Kind == groupNegated {
				end = end.addEdge(negatedExp{
					sub:               compileAlternatives(n.Alts, cfg),
					crossesSeparators: crossesSeparators(n.Alts),
				})
				break
			}
			end = compileGroup(end, n.Kind, n.Alts, segStart, cfg)

		case *quantified:
			end = compileGroup(end, n.Quant, []sequence{{n.Atom}}, segStart, cfg)
		}
	}
	return end
}

func nextNode(seq sequence, i int) node {
	if i+1 < len(seq) {
		return seq[i+1]
	}
	return nil
}

// compileStar appends a fresh state with a * self-loop.
func compileStar(from *state) *state {
	loop := from.addEdge(nil)
	loop.Out = append(loop.Out, edge{Expr: starExp{}, State: loop})
	return loop
}

// compileGroup appends a branch to the machine, a sequence in each branch,
// then a merge. Repetition and skipping are epsilon edges, ordered so that
// the machine prefers to match more.
func compileGroup(from *state, kind groupKind, alts []sequence, atStart bool, cfg *config) *state {
	start := from.addEdge(nil)
	end := &state{}

	if kind == groupZeroOrMore || kind == groupOneOrMore {
		// Loop edge, preferred over whatever follows the group.
		end.Out = append(end.Out, edge{State: start})
	}
	for _, alt := range alts {
		altEnd := compileSequence(start.addEdge(nil), alt, atStart, cfg)
		altEnd.Out = append(altEnd.Out, edge{State: end})
	}
	if kind == groupZeroOrMore || kind == groupZeroOrOne {
		// Skip edge, least preferred.
		start.Out = append(start.Out, edge{State: end})
	}
	return end
}

// compileAlternatives compiles the body of a negated group into its own
// machine.
func compileAlternatives(alts []sequence, cfg *config) *state {
	initial := &state{}
	accept := &state{Accept: true}
	for _, alt := range alts {
		altEnd := compileSequence(initial.addEdge(nil), alt, false, cfg)
		altEnd.Out = append(altEnd.Out, edge{State: accept})
	}
	reduce(initial)
	return initial
}

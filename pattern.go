package extglob

import (
	"fmt"
	"io"
	"strings"

	"github.com/DrJosh9000/extglob/braces"
)

// Pattern is a compiled extended glob pattern. It is immutable, and safe for
// concurrent use.
type Pattern struct {
	raw      string
	cfg      config
	programs []*program // one per brace expansion
}

// compilePattern expands braces, and then tokenises, parses and compiles each
// expansion.
func compilePattern(pattern string, cfg config) *Pattern {
	p := &Pattern{
		raw: pattern,
		cfg: cfg,
	}
	for _, exp := range braces.Expand(pattern) {
		root := parse(tokenise(exp, &p.cfg))
		p.programs = append(p.programs, compile(root, &p.cfg))
	}
	return p
}

// Parse returns the compiled form of the pattern, using the default cache.
// Parsing never fails: malformed constructs are treated as literal text.
func Parse(pattern string, opts ...Option) *Pattern {
	return defaultCache.Parse(pattern, opts...)
}

// String returns the pattern as it was written.
func (p *Pattern) String() string { return p.raw }

// Match reports if the candidate matches the pattern.
func (p *Pattern) Match(candidate string) bool {
	if p.cfg.unixify {
		candidate = strings.ReplaceAll(candidate, `\`, "/")
	}
	m := &matcher{
		input: decode(candidate),
		cfg:   &p.cfg,
	}
	for _, prog := range p.programs {
		if prog.match(m) {
			return true
		}
	}
	return false
}

// WriteDot writes a digraph representing the automata to the writer
// (in GraphViz syntax). Machines for negated groups are drawn as clusters.
func (p *Pattern) WriteDot(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "digraph {\n\trankdir=LR;\n\tlabel=%q;\n", p.raw); err != nil {
		return err
	}

	seen := make(map[*state]bool)
	for i, prog := range p.programs {
		var initials []*state
		switch {
		case prog.allLiteral:
			if _, err := fmt.Fprintf(w, "\tinitial_%d [label=\"\", style=invis];\n\tterminal_%d [label=\"\", shape=doublecircle];\n\tinitial_%d -> terminal_%d [label=%q];\n", i, i, i, i, prog.literal.String()); err != nil {
				return err
			}
			continue
		case prog.initial != nil:
			initials = []*state{prog.initial}
		default:
			initials = prog.segments
		}
		for j, s := range initials {
			if _, err := fmt.Fprintf(w, "\tinitial_%d_%d [label=\"\", style=invis];\n\tinitial_%d_%d -> state_%p;\n", i, j, i, j, s); err != nil {
				return err
			}
			if err := writeDotStates(w, s, seen); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}

func writeDotStates(w io.Writer, initial *state, seen map[*state]bool) error {
	q := []*state{initial}
	for len(q) > 0 {
		s := q[0]
		q = q[1:]

		if seen[s] {
			continue
		}
		seen[s] = true

		shape := "circle"
		if s.Accept {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "\tstate_%p [label=\"\", shape=%s];\n", s, shape); err != nil {
			return err
		}
		for _, e := range s.Out {
			label := "ε"
			if e.Expr != nil {
				label = e.Expr.String()
			}
			if _, err := fmt.Fprintf(w, "\tstate_%p -> state_%p [label=%q];\n", s, e.State, label); err != nil {
				return err
			}
			if n, ok := e.Expr.(negatedExp); ok && !seen[n.sub] {
				if _, err := fmt.Fprintf(w, "\tsubgraph cluster_%p {\n\tstyle=dashed;\n", n.sub); err != nil {
					return err
				}
				if err := writeDotStates(w, n.sub, seen); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(w, "\t}\n\tstate_%p -> state_%p [style=dotted];\n", s, n.sub); err != nil {
					return err
				}
			}
			if seen[e.State] {
				continue
			}
			q = append(q, e.State)
		}
	}
	return nil
}

package extglob

import (
	"fmt"
	"unicode"
)

// expression is the condition on a non-epsilon edge.
type expression interface {
	// advance appends to out every offset at which a match of the expression
	// starting at offset i (and ending no later than hi) can end, most
	// preferred first.
	advance(m *matcher, i, hi int, out []int) []int

	fmt.Stringer
}

// Expressions
type (
	// Matches exactly these runes. Like a wildcard, it cannot match a hidden
	// leading dot.
	literalExp []rune

	// A literal starting with '.' at the start of a pattern segment. Unlike
	// literalExp, it can match a leading dot.
	dotLiteralExp []rune

	// ? matches like [^/], but not a hidden leading dot.
	questionExp struct{}

	// * matches like [^/] on a self-loop, but not a hidden leading dot.
	starExp struct{}

	// Matches a path separator.
	separatorExp struct{}

	// Matches one rune in (or, if negated, not in) a bracket expression.
	classExp struct{ *charClass }

	// ** matches zero or more whole segments. When trailing, each consumed
	// segment includes its separator.
	globStarExp struct{ trailing bool }

	// !( ) matches any span within which sub does not match.
	negatedExp struct {
		sub               *state
		crossesSeparators bool
	}
)

func (e literalExp) advance(m *matcher, i, hi int, out []int) []int {
	if len(e) > 0 && i < hi && m.hidden(i) {
		return out
	}
	return dotLiteralExp(e).advance(m, i, hi, out)
}

func (e dotLiteralExp) advance(m *matcher, i, hi int, out []int) []int {
	if i+len(e) > hi {
		return out
	}
	for j, r := range e {
		if !m.runeEqual(m.input[i+j], r) {
			return out
		}
	}
	return append(out, i+len(e))
}

func (questionExp) advance(m *matcher, i, hi int, out []int) []int {
	if i < hi && m.input[i] != '/' && !m.hidden(i) {
		return append(out, i+1)
	}
	return out
}

func (starExp) advance(m *matcher, i, hi int, out []int) []int {
	return questionExp{}.advance(m, i, hi, out)
}

func (separatorExp) advance(m *matcher, i, hi int, out []int) []int {
	if i < hi && m.input[i] == '/' {
		return append(out, i+1)
	}
	return out
}

func (e classExp) advance(m *matcher, i, hi int, out []int) []int {
	if i >= hi {
		return out
	}
	if m.hidden(i) {
		return out
	}
	r := m.input[i]
	has := e.contains(r, m.cfg.caseSensitive)
	if e.Negated {
		if r == '/' || has {
			return out
		}
		return append(out, i+1)
	}
	if has {
		return append(out, i+1)
	}
	return out
}

func (e globStarExp) advance(m *matcher, i, hi int, out []int) []int {
	if !m.segmentStart(i) {
		return out
	}
	out = append(out, i)
	if e.trailing {
		// Shortest first: i, then after each successive separator.
		for k := i; k < hi; {
			if m.hidden(k) {
				break
			}
			j := m.indexSeparator(k, hi)
			if j < 0 {
				break
			}
			out = append(out, j+1)
			k = j + 1
		}
		return out
	}

	// Final **: nothing, or everything up to hi.
	for k := i; k < hi; {
		if m.hidden(k) {
			return out
		}
		j := m.indexSeparator(k, hi)
		if j < 0 {
			break
		}
		k = j + 1
	}
	if hi > i {
		out = append(out, hi)
	}
	return out
}

func (e negatedExp) advance(m *matcher, i, hi int, out []int) []int {
	lim := hi
	if !e.crossesSeparators {
		if j := m.indexSeparator(i, hi); j >= 0 {
			lim = j
		}
	}
	// Longest span first.
	for j := lim; j >= i; j-- {
		if j > i && m.hidden(i) {
			continue
		}
		if !m.run(e.sub, i, j) {
			out = append(out, j)
		}
	}
	return out
}

func (e literalExp) String() string    { return fmt.Sprintf("%q", string(e)) }
func (e dotLiteralExp) String() string { return fmt.Sprintf("%q", string(e)) }
func (questionExp) String() string     { return "?" }
func (starExp) String() string         { return "*" }
func (separatorExp) String() string    { return "/" }
func (e classExp) String() string      { return e.charClass.String() }
func (e globStarExp) String() string {
	if e.trailing {
		return "**/"
	}
	return "**"
}
func (e negatedExp) String() string { return fmt.Sprintf("!(%p)", e.sub) }

// runeEqual compares runes, folding case if configured.
func (m *matcher) runeEqual(a, b rune) bool {
	if a == b {
		return true
	}
	return !m.cfg.caseSensitive && unicode.ToLower(a) == unicode.ToLower(b)
}

// Package braces implements shell-style brace expansion.
//
//	a{b,c}d      -> abd acd
//	a{b,c{d,e}}f -> abf acdf acef
//	{1..3}       -> 1 2 3
//	{01..10..3}  -> 01 04 07 10
//	{a..e..2}    -> a c e
//
// A backslash escapes the following character (the backslash is kept in the
// output). Braces that contain neither a top-level comma nor a valid sequence
// are left as they are.
package braces

import (
	"strconv"
	"strings"
)

// MaxSequence is the largest number of items a single {x..y} sequence may
// produce. Longer sequences are left unexpanded.
const MaxSequence = 1 << 16

// Expand returns every expansion of the braces in pattern, in order. A
// pattern without braces expands to itself.
func Expand(pattern string) []string {
	return expand(pattern, 0)
}

// expand expands the first brace expression at or after from. Everything
// before from has already been expanded.
func expand(p string, from int) []string {
	for i := from; i < len(p); i++ {
		switch p[i] {
		case '\\':
			i++

		case '{':
			closing, parts := splitBrace(p, i)
			if closing < 0 {
				continue
			}
			pre, post := p[:i], p[closing+1:]
			var out []string
			for _, part := range parts {
				// part may itself contain braces, so resume at i.
				out = append(out, expand(pre+part+post, i)...)
			}
			return out
		}
	}
	return []string{p}
}

// splitBrace finds the } matching the { at p[open], and returns its index and
// the alternatives between them. It returns -1 if the braces don't form an
// expansion.
func splitBrace(p string, open int) (int, []string) {
	depth := 0
	var commas []int
	for j := open; j < len(p); j++ {
		switch p[j] {
		case '\\':
			j++

		case '{':
			depth++

		case '}':
			depth--
			if depth > 0 {
				continue
			}
			if len(commas) > 0 {
				parts := make([]string, 0, len(commas)+1)
				prev := open + 1
				for _, k := range commas {
					parts = append(parts, p[prev:k])
					prev = k + 1
				}
				return j, append(parts, p[prev:j])
			}
			if seq := sequence(p[open+1 : j]); seq != nil {
				return j, seq
			}
			return -1, nil

		case ',':
			if depth == 1 {
				commas = append(commas, j)
			}
		}
	}
	return -1, nil
}

// sequence expands x..y or x..y..step, where x and y are both integers or
// both single letters. It returns nil if body is not a sequence.
func sequence(body string) []string {
	parts := strings.Split(body, "..")
	if len(parts) != 2 && len(parts) != 3 {
		return nil
	}
	step := 1
	if len(parts) == 3 {
		if !isInt(parts[2]) {
			return nil
		}
		s, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil
		}
		step = max(s, -s, 1)
	}

	switch {
	case isInt(parts[0]) && isInt(parts[1]):
		return numericSequence(parts[0], parts[1], step)

	case isLetter(parts[0]) && isLetter(parts[1]):
		a, b := int(parts[0][0]), int(parts[1][0])
		if (max(a, b)-min(a, b))/step >= MaxSequence {
			return nil
		}
		if a > b {
			step = -step
		}
		var out []string
		for x := a; (step > 0 && x <= b) || (step < 0 && x >= b); x += step {
			out = append(out, string(rune(x)))
		}
		return out
	}
	return nil
}

func numericSequence(from, to string, step int) []string {
	a, err := strconv.Atoi(from)
	if err != nil {
		return nil
	}
	b, err := strconv.Atoi(to)
	if err != nil {
		return nil
	}
	if (max(a, b)-min(a, b))/step >= MaxSequence {
		return nil
	}

	// Zero padding applies if either end has a leading zero.
	width := 0
	for _, s := range []string{from, to} {
		if d := strings.TrimPrefix(s, "-"); len(d) > 1 && d[0] == '0' {
			width = max(width, len(s))
		}
	}

	if a > b {
		step = -step
	}
	var out []string
	for x := a; (step > 0 && x <= b) || (step < 0 && x >= b); x += step {
		out = append(out, pad(x, width))
	}
	return out
}

// pad formats x with at least width characters, including any sign.
func pad(x, width int) string {
	neg := x < 0
	if neg {
		x = -x
	}
	s := strconv.Itoa(x)
	w := width
	if neg {
		w--
	}
	if len(s) < w {
		s = strings.Repeat("0", w-len(s)) + s
	}
	if neg {
		s = "-" + s
	}
	return s
}

// isInt reports whether s is an optional - followed by decimal digits.
func isInt(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isLetter(s string) bool {
	return len(s) == 1 && ('a' <= s[0] && s[0] <= 'z' || 'A' <= s[0] && s[0] <= 'Z')
}

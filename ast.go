package extglob

import (
	"fmt"
	"strings"
	"unicode"
)

// node is an element of a parsed pattern.
type node interface{ nodeTag() }

// AST nodes
type (
	// Matches exactly these runes.
	literal []rune

	// ? matches one character other than a separator.
	anyChar struct{}

	// * matches zero or more characters within one segment.
	anyRun struct{}

	// ** as a whole segment matches zero or more segments.
	globStarRun struct{}

	// A path separator.
	pathBoundary struct{}

	// Matches each element in turn.
	sequence []node
)

// charClass is a bracket expression.
type charClass struct {
	Items   []classItem
	Negated bool
}

// classItem is either a range of runes (a single rune has Lo == Hi) or a
// named POSIX class.
type classItem struct {
	Lo, Hi rune
	Named  string
}

type groupKind int

const (
	groupAlternation groupKind = iota // ( )
	groupExactlyOne                   // @( )
	groupZeroOrOne                    // ?( )
	groupZeroOrMore                   // *( )
	groupOneOrMore                    // +( )
	groupNegated                      // !( )
)

var groupKindNames = map[groupKind]string{
	groupAlternation: "(",
	groupExactlyOne:  "@(",
	groupZeroOrOne:   "?(",
	groupZeroOrMore:  "*(",
	groupOneOrMore:   "+(",
	groupNegated:     "!(",
}

// group is a parenthesised list of alternatives.
type group struct {
	Kind groupKind
	Alts []sequence
}

// quantified applies a postfix quantifier (groupZeroOrOne, groupZeroOrMore
// or groupOneOrMore) to a single atom.
type quantified struct {
	Atom  node
	Quant groupKind
}

func (literal) nodeTag()      {}
func (anyChar) nodeTag()      {}
func (anyRun) nodeTag()       {}
func (globStarRun) nodeTag()  {}
func (pathBoundary) nodeTag() {}
func (sequence) nodeTag()     {}
func (*charClass) nodeTag()   {}
func (*group) nodeTag()       {}
func (*quantified) nodeTag()  {}

var posixClasses = map[string]func(rune) bool{
	"alnum":  func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) },
	"alpha":  unicode.IsLetter,
	"blank":  func(r rune) bool { return r == ' ' || r == '\t' },
	"cntrl":  unicode.IsControl,
	"digit":  unicode.IsDigit,
	"graph":  func(r rune) bool { return unicode.IsGraphic(r) && !unicode.IsSpace(r) },
	"lower":  unicode.IsLower,
	"print":  unicode.IsPrint,
	"punct":  unicode.IsPunct,
	"space":  unicode.IsSpace,
	"upper":  unicode.IsUpper,
	"word":   func(r rune) bool { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) },
	"xdigit": func(r rune) bool { return unicode.Is(unicode.ASCII_Hex_Digit, r) },
}

// contains reports whether r is a member of the class, ignoring negation.
func (c *charClass) contains(r rune, caseSensitive bool) bool {
	for _, it := range c.Items {
		if it.Named != "" {
			if posixClasses[it.Named](r) {
				return true
			}
			continue
		}
		if it.Lo <= r && r <= it.Hi {
			return true
		}
		if caseSensitive {
			continue
		}
		for _, v := range []rune{unicode.ToLower(r), unicode.ToUpper(r)} {
			if it.Lo <= v && v <= it.Hi {
				return true
			}
		}
	}
	return false
}

func (c *charClass) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	if c.Negated {
		sb.WriteByte('!')
	}
	for _, it := range c.Items {
		switch {
		case it.Named != "":
			fmt.Fprintf(&sb, "[:%s:]", it.Named)
		case it.Lo == it.Hi:
			sb.WriteRune(it.Lo)
		default:
			fmt.Fprintf(&sb, "%c-%c", it.Lo, it.Hi)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

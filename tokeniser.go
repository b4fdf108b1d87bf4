package extglob

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

// Lexer token kinds.
const (
	tokenEnd tokenKind = -1 // no more tokens

	tokenLiteral tokenKind = iota
	tokenStar
	tokenQuestion
	tokenPlus
	tokenOpenParen
	tokenCloseParen
	tokenPipe
	tokenOpenBracket
	tokenCloseBracket
	tokenSeparator

	// Extglob openers: a marker immediately followed by (.
	tokenAtParen
	tokenStarParen
	tokenPlusParen
	tokenQuestionParen
	tokenBangParen
)

func (k tokenKind) String() string {
	switch k {
	case tokenEnd:
		return "end"
	case tokenLiteral:
		return "literal"
	case tokenStar:
		return "*"
	case tokenQuestion:
		return "?"
	case tokenPlus:
		return "+"
	case tokenOpenParen:
		return "("
	case tokenCloseParen:
		return ")"
	case tokenPipe:
		return "|"
	case tokenOpenBracket:
		return "["
	case tokenCloseBracket:
		return "]"
	case tokenSeparator:
		return "/"
	case tokenAtParen:
		return "@("
	case tokenStarParen:
		return "*("
	case tokenPlusParen:
		return "+("
	case tokenQuestionParen:
		return "?("
	case tokenBangParen:
		return "!("
	}
	return "invalid"
}

// token is one lexical unit of a pattern.
type token struct {
	kind    tokenKind
	r       rune // only for tokenLiteral
	escaped bool // the literal was preceded by a backslash
}

// text returns the pattern text the token stands for.
func (t token) text() string {
	if t.kind == tokenLiteral {
		return string(t.r)
	}
	return t.kind.String()
}

type tokens []token

// metachars are the characters a backslash escapes even when Unixify is on.
const metachars = `*?+@!()[]|\/{},`

var extglobOpeners = map[rune]tokenKind{
	'@': tokenAtParen,
	'*': tokenStarParen,
	'+': tokenPlusParen,
	'?': tokenQuestionParen,
	'!': tokenBangParen,
}

var punctuation = map[rune]tokenKind{
	'*': tokenStar,
	'?': tokenQuestion,
	'+': tokenPlus,
	'(': tokenOpenParen,
	')': tokenCloseParen,
	'|': tokenPipe,
	'[': tokenOpenBracket,
	']': tokenCloseBracket,
	'/': tokenSeparator,
}

// invalidByte is added to each byte of invalid UTF-8, which then compares
// equal only to the same byte.
const invalidByte = unicode.MaxRune + 1

// decode splits s into runes, like []rune(s), but without replacing invalid
// bytes with utf8.RuneError.
func decode(s string) []rune {
	rs := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n == 1 {
			r = invalidByte + rune(s[i])
		}
		rs = append(rs, r)
		i += n
	}
	return rs
}

func tokenise(p string, cfg *config) tokens {
	rs := decode(p)

	// Most tokens are single runes, so preallocate len(rs).
	tks := make(tokens, 0, len(rs))

	for i := 0; i < len(rs); i++ {
		c := rs[i]

		if c == '\\' {
			if i+1 >= len(rs) {
				// Trailing backslash escapes nothing.
				tks = append(tks, token{kind: tokenLiteral, r: '\\'})
				continue
			}
			n := rs[i+1]
			if cfg.unixify && !strings.ContainsRune(metachars, n) {
				// A Windows-style separator. n is processed normally.
				tks = append(tks, token{kind: tokenSeparator})
				continue
			}
			tks = append(tks, token{kind: tokenLiteral, r: n, escaped: true})
			i++
			continue
		}

		if i+1 < len(rs) && rs[i+1] == '(' {
			if k, ok := extglobOpeners[c]; ok {
				tks = append(tks, token{kind: k})
				i++
				continue
			}
		}

		if k, ok := punctuation[c]; ok {
			tks = append(tks, token{kind: k})
			continue
		}

		tks = append(tks, token{kind: tokenLiteral, r: c})
	}
	return tks
}

package extglob

type parserContext int

const (
	parserInsideNothing parserContext = iota // top level of the pattern
	parserInsideExtGlob                      // inside @( ), *( ) etc
	parserInsideGroup                        // inside a bare ( )
)

// parser consumes tokens. Unterminated constructs rewind pos and degrade to
// literals, so parsing never fails.
type parser struct {
	tks tokens
	pos int
}

// peek returns the token k places ahead, or a tokenEnd token.
func (p *parser) peek(k int) token {
	if j := p.pos + k; j >= 0 && j < len(p.tks) {
		return p.tks[j]
	}
	return token{kind: tokenEnd}
}

// parse converts a token sequence into a tree. A top-level | splits the whole
// pattern into alternatives.
func parse(tks tokens) sequence {
	p := &parser{tks: tks}
	var alts []sequence
	for {
		seq, endedWith := p.parseSequence(parserInsideNothing)
		alts = append(alts, seq)
		if endedWith != tokenPipe {
			break
		}
	}
	if len(alts) == 1 {
		return alts[0]
	}
	return sequence{&group{Kind: groupAlternation, Alts: alts}}
}

var openerKinds = map[tokenKind]groupKind{
	tokenAtParen:       groupExactlyOne,
	tokenStarParen:     groupZeroOrMore,
	tokenPlusParen:     groupOneOrMore,
	tokenQuestionParen: groupZeroOrOne,
	tokenBangParen:     groupNegated,
}

var quantifierKinds = map[tokenKind]groupKind{
	tokenStar:     groupZeroOrMore,
	tokenQuestion: groupZeroOrOne,
	tokenPlus:     groupOneOrMore,
}

// parseSequence parses a sequence, up to the end of the tokens, a |, or (when
// inside a group) the closing ).
func (p *parser) parseSequence(pctx parserContext) (seq sequence, endedWith tokenKind) {
	for {
		t := p.peek(0)
		switch t.kind {
		case tokenEnd:
			return coalesce(seq), tokenEnd

		case tokenPipe:
			p.pos++
			return coalesce(seq), tokenPipe

		case tokenCloseParen:
			p.pos++
			if pctx != parserInsideNothing {
				return coalesce(seq), tokenCloseParen
			}
			seq = append(seq, literal(")"))

		case tokenAtParen, tokenStarParen, tokenPlusParen, tokenQuestionParen, tokenBangParen:
			save := p.pos
			p.pos++
			if g := p.parseGroup(openerKinds[t.kind]); g != nil {
				seq = append(seq, g)
				continue
			}
			// Unterminated: the marker and ( are literals.
			p.pos = save + 1
			text := t.text()
			seq = append(seq, literal(text[:1]), literal("("))

		case tokenOpenParen:
			save := p.pos
			p.pos++
			if g := p.parseGroup(groupAlternation); g != nil {
				seq = append(seq, g)
				continue
			}
			p.pos = save + 1
			seq = append(seq, literal("("))

		case tokenOpenBracket:
			save := p.pos
			p.pos++
			if cc := p.readCharClass(); cc != nil {
				seq = append(seq, cc)
				continue
			}
			p.pos = save + 1
			seq = append(seq, literal("["))

		case tokenSeparator:
			p.pos++
			seq = append(seq, pathBoundary{})

		case tokenStar, tokenQuestion, tokenPlus:
			if q := p.quantify(seq, t.kind, pctx); q != nil {
				p.pos++
				seq[len(seq)-1] = q
				continue
			}
			switch t.kind {
			case tokenPlus:
				p.pos++
				seq = append(seq, literal("+"))
			case tokenQuestion:
				p.pos++
				seq = append(seq, anyChar{})
			case tokenStar:
				if p.atGlobStar(pctx) {
					p.pos += 2
					seq = append(seq, globStarRun{})
					continue
				}
				p.pos++
				seq = append(seq, anyRun{})
			}

		case tokenLiteral:
			p.pos++
			seq = append(seq, literal{t.r})

		default:
			// Any stray ].
			p.pos++
			seq = append(seq, literal(t.text()))
		}
	}
}

// quantify returns the last node of seq wrapped in the quantifier k, if k
// acts as a postfix quantifier in this context.
// Inside a bare group, quantifiers follow any single-character atom or group.
// Elsewhere only a bare group can be quantified; otherwise * and ? keep
// their glob meaning.
func (p *parser) quantify(seq sequence, k tokenKind, pctx parserContext) *quantified {
	if len(seq) == 0 {
		return nil
	}
	prev := seq[len(seq)-1]
	bareGroup := false
	if g, ok := prev.(*group); ok && g.Kind == groupAlternation {
		bareGroup = true
	}
	switch pctx {
	case parserInsideGroup:
		switch prev.(type) {
		case literal, *charClass, anyChar:
		default:
			if !bareGroup {
				return nil
			}
		}
	default:
		if !bareGroup {
			return nil
		}
	}
	return &quantified{Atom: prev, Quant: quantifierKinds[k]}
}

// atGlobStar reports whether the tokens at pos are a ** occupying a whole
// path segment of a top-level alternative.
func (p *parser) atGlobStar(pctx parserContext) bool {
	if pctx != parserInsideNothing || p.peek(1).kind != tokenStar {
		return false
	}
	switch p.peek(-1).kind {
	case tokenEnd, tokenSeparator, tokenPipe:
	default:
		return false
	}
	switch p.peek(2).kind {
	case tokenEnd, tokenSeparator, tokenPipe:
		return true
	}
	return false
}

// parseGroup parses the alternatives of a group. The opening token has been
// consumed. It returns nil if the group is never closed.
func (p *parser) parseGroup(kind groupKind) *group {
	pctx := parserInsideExtGlob
	if kind == groupAlternation {
		pctx = parserInsideGroup
	}
	g := &group{Kind: kind}
	for {
		seq, endedWith := p.parseSequence(pctx)
		g.Alts = append(g.Alts, seq)
		switch endedWith {
		case tokenPipe:
			continue
		case tokenCloseParen:
			return g
		default:
			return nil
		}
	}
}

// coalesce merges adjacent literals and collapses adjacent *s.
func coalesce(seq sequence) sequence {
	var out sequence
	for _, n := range seq {
		if len(out) > 0 {
			switch n := n.(type) {
			case literal:
				if prev, ok := out[len(out)-1].(literal); ok {
					out[len(out)-1] = append(prev[:len(prev):len(prev)], n...)
					continue
				}
			case anyRun:
				if _, ok := out[len(out)-1].(anyRun); ok {
					continue
				}
			}
		}
		out = append(out, n)
	}
	return out
}

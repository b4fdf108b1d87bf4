package extglob

// classChar is one character of a bracket expression, flattened out of the
// token stream.
type classChar struct {
	r       rune
	escaped bool
	close   bool // an unescaped ]
	tok     int  // index of the token it came from
}

// readCharClass reads a bracket expression. The [ has been consumed. It
// returns nil (without consuming anything) if there is no closing ].
func (p *parser) readCharClass() *charClass {
	// Tokens inside brackets mean nothing special except ], so flatten them
	// back into characters. Separators are the literal /.
	var chars []classChar
	for j := p.pos; j < len(p.tks); j++ {
		t := p.tks[j]
		switch t.kind {
		case tokenCloseBracket:
			chars = append(chars, classChar{r: ']', close: true, tok: j})
		case tokenLiteral:
			chars = append(chars, classChar{r: t.r, escaped: t.escaped, tok: j})
		default:
			for _, r := range t.text() {
				chars = append(chars, classChar{r: r, tok: j})
			}
		}
	}

	cc := &charClass{}
	k := 0
	if len(chars) > 0 && !chars[0].escaped && (chars[0].r == '!' || chars[0].r == '^') {
		cc.Negated = true
		k++
	}

	first := true
	for k < len(chars) {
		c := chars[k]
		if c.close && !first {
			p.pos = c.tok + 1
			return cc
		}
		first = false

		if c.r == '[' && !c.escaped && k+1 < len(chars) && chars[k+1].r == ':' {
			if name, n := posixName(chars[k+2:]); n > 0 {
				cc.Items = append(cc.Items, classItem{Named: name})
				k += 2 + n
				continue
			}
		}

		if k+2 < len(chars) && chars[k+1].r == '-' && !chars[k+1].escaped && !chars[k+2].close {
			cc.Items = append(cc.Items, classItem{Lo: c.r, Hi: chars[k+2].r})
			k += 3
			continue
		}

		cc.Items = append(cc.Items, classItem{Lo: c.r, Hi: c.r})
		k++
	}
	return nil
}

// posixName looks for "name:]" at the start of chars, where name is a known
// POSIX class. It returns the name and the number of characters used.
func posixName(chars []classChar) (string, int) {
	for e := 0; e+1 < len(chars); e++ {
		if chars[e].r != ':' || chars[e+1].r != ']' {
			continue
		}
		if e == 0 {
			return "", 0
		}
		name := make([]rune, e)
		for i := range name {
			name[i] = chars[i].r
		}
		if _, ok := posixClasses[string(name)]; ok {
			return string(name), e + 2
		}
		return "", 0
	}
	return "", 0
}

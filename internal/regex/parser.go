package regex

// Parse turns a pattern into a syntax tree.
//
// Grammar, lowest precedence first:
//
//	alt  := seq ('|' seq)*
//	seq  := term+
//	term := atom ('*' | '+' | '?')*
//	atom := literal | '\' byte | class | '(' alt ')'
//
// The empty pattern parses to an OpEmpty node. Empty branches and groups
// are rejected.
func Parse(pattern string) (*Node, error) {
	p := &parser{lex: newLexer(pattern)}
	if err := p.scan(); err != nil {
		return nil, err
	}
	if p.look.typ == tEOF {
		return &Node{Op: OpEmpty}, nil
	}
	n, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if p.look.typ == tRParen {
		return nil, p.fail(ErrUnbalancedGroup)
	}
	return n, nil
}

// MustParse is like Parse but panics on error.
func MustParse(pattern string) *Node {
	n, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

type parser struct {
	lex  *lexer
	look token
}

func (p *parser) scan() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.look = tok
	return nil
}

func (p *parser) fail(err error) error {
	return &Error{Pattern: p.lex.input, Pos: p.look.pos, Err: err}
}

func (p *parser) parseAlt() (*Node, error) {
	first, err := p.parseSeq()
	if err != nil {
		return nil, err
	}
	if p.look.typ != tUnion {
		return first, nil
	}
	alt := &Node{Op: OpAlternate, Sub: []*Node{first}}
	for p.look.typ == tUnion {
		if err := p.scan(); err != nil {
			return nil, err
		}
		n, err := p.parseSeq()
		if err != nil {
			return nil, err
		}
		alt.Sub = append(alt.Sub, n)
	}
	return alt, nil
}

func (p *parser) parseSeq() (*Node, error) {
	var terms []*Node
	for {
		switch p.look.typ {
		case tEOF, tUnion, tRParen:
			switch len(terms) {
			case 0:
				return nil, p.fail(ErrEmptyAlternative)
			case 1:
				return terms[0], nil
			}
			return &Node{Op: OpConcat, Sub: terms}, nil
		}
		n, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, n)
	}
}

// parseTerm reads one atom and the postfix operators bound to it. The
// operators apply to that atom only, never to the sequence before it.
func (p *parser) parseTerm() (*Node, error) {
	n, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		var op Op
		switch p.look.typ {
		case tStar:
			op = OpStar
		case tPlus:
			op = OpPlus
		case tQMark:
			op = OpQuest
		default:
			return n, nil
		}
		n = &Node{Op: op, Sub: []*Node{n}}
		if err := p.scan(); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseAtom() (*Node, error) {
	tok := p.look
	switch tok.typ {
	case tLiteral:
		if err := p.scan(); err != nil {
			return nil, err
		}
		return literal(tok.ch), nil
	case tClass:
		if err := p.scan(); err != nil {
			return nil, err
		}
		return &Node{Op: OpClass, Class: tok.class}, nil
	case tLParen:
		if err := p.scan(); err != nil {
			return nil, err
		}
		inner, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if p.look.typ != tRParen {
			return nil, &Error{Pattern: p.lex.input, Pos: tok.pos, Err: ErrUnbalancedGroup}
		}
		if err := p.scan(); err != nil {
			return nil, err
		}
		return inner, nil
	case tStar, tPlus, tQMark:
		return nil, p.fail(ErrMissingOperand)
	}
	return nil, p.fail(ErrEmptyAlternative)
}

package regex

type tokenType int

const (
	tEOF     tokenType = iota
	tLiteral           // literal byte, escaped or not
	tClass             // a whole [...] class
	tLParen            // (
	tRParen            // )
	tStar              // *
	tPlus              // +
	tQMark             // ?
	tUnion             // |
)

type token struct {
	typ   tokenType
	pos   int
	ch    byte  // tLiteral
	class Class // tClass
}

// lexer splits a pattern into tokens. Character classes are scanned as a
// single token since their contents follow different escaping rules.
type lexer struct {
	input string
	pos   int
}

func newLexer(s string) *lexer { return &lexer{input: s} }

func (l *lexer) fail(pos int, err error) (token, error) {
	return token{}, &Error{Pattern: l.input, Pos: pos, Err: err}
}

func (l *lexer) next() (token, error) {
	if l.pos >= len(l.input) {
		return token{typ: tEOF, pos: l.pos}, nil
	}
	start := l.pos
	c := l.input[l.pos]
	l.pos++
	switch c {
	case 0:
		return l.fail(start, ErrReservedByte)
	case '(':
		return token{typ: tLParen, pos: start}, nil
	case ')':
		return token{typ: tRParen, pos: start}, nil
	case '*':
		return token{typ: tStar, pos: start}, nil
	case '+':
		return token{typ: tPlus, pos: start}, nil
	case '?':
		return token{typ: tQMark, pos: start}, nil
	case '|':
		return token{typ: tUnion, pos: start}, nil
	case ']':
		return l.fail(start, ErrStrayBracket)
	case '[':
		return l.class(start)
	case '\\':
		if l.pos >= len(l.input) {
			return l.fail(start, ErrDanglingEscape)
		}
		e := l.input[l.pos]
		l.pos++
		if e == 0 {
			return l.fail(start, ErrReservedByte)
		}
		return token{typ: tLiteral, pos: start, ch: e}, nil
	default:
		return token{typ: tLiteral, pos: start, ch: c}, nil
	}
}

// class scans the body of a character class; l.pos sits just past '['.
func (l *lexer) class(start int) (token, error) {
	tok := token{typ: tClass, pos: start}
	if l.pos < len(l.input) && l.input[l.pos] == '^' {
		tok.class.Negated = true
		l.pos++
	}
	empty := true
	for {
		if l.pos >= len(l.input) {
			return l.fail(start, ErrUnterminatedClass)
		}
		if l.input[l.pos] == ']' {
			l.pos++
			break
		}
		lo, err := l.classByte()
		if err != nil {
			return token{}, err
		}
		hi := lo
		// a-z; a '-' right before ']' is literal
		if l.pos+1 < len(l.input) && l.input[l.pos] == '-' && l.input[l.pos+1] != ']' {
			rangePos := l.pos
			l.pos++
			if hi, err = l.classByte(); err != nil {
				return token{}, err
			}
			if lo > hi {
				return l.fail(rangePos, ErrInvalidRange)
			}
		}
		for b := int(lo); b <= int(hi); b++ {
			tok.class.Add(byte(b))
		}
		empty = false
	}
	if empty {
		return l.fail(start, ErrEmptyClass)
	}
	return tok, nil
}

// classByte reads one member byte. Inside a class \t and \n decode to tab
// and newline, any other escaped byte stands for itself.
func (l *lexer) classByte() (byte, error) {
	pos := l.pos
	c := l.input[l.pos]
	l.pos++
	if c == '\\' {
		if l.pos >= len(l.input) {
			_, err := l.fail(pos, ErrDanglingEscape)
			return 0, err
		}
		c = l.input[l.pos]
		l.pos++
		switch c {
		case 't':
			c = '\t'
		case 'n':
			c = '\n'
		}
	}
	if c == 0 {
		_, err := l.fail(pos, ErrReservedByte)
		return 0, err
	}
	return c, nil
}

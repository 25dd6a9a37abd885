package toyjson

import (
	"fmt"
	"strings"
)

const eof rune = -1

// lexer generates tokens from json text on demand.
// It addresses the input by rune so multi-byte characters are never split,
// and it never moves backwards.
type lexer struct {
	data      []rune
	pos       int
	line, col int
}

func newLexer(text string) *lexer {
	return &lexer{
		data: []rune(text),
		line: 1,
		col:  1,
	}
}

func (l *lexer) position() Position {
	return Position{Offset: l.pos, Line: l.line, Col: l.col}
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.data) {
		return eof
	}
	return l.data[l.pos]
}

func (l *lexer) consume() rune {
	if l.pos >= len(l.data) {
		return eof
	}
	r := l.data[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) errorf(pos Position, format string, args ...interface{}) *LexicalError {
	return &LexicalError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// next returns the next token. The end of the input is reported as an
// eofToken, not as an error.
func (l *lexer) next() (token, error) {
	for isSpace(l.peek()) {
		l.consume()
	}
	pos := l.position()
	r := l.consume()
	if t, ok := punctToken(r, pos); ok {
		return t, nil
	}
	switch {
	case r == eof:
		return token{Type: eofToken, Pos: pos}, nil
	case r == '"':
		return l.lexString(pos)
	case r == '-' || isDigit(r):
		return l.lexNumber(r, pos)
	case r == 't':
		return l.lexLiteral("true", trueToken, pos)
	case r == 'f':
		return l.lexLiteral("false", falseToken, pos)
	case r == 'n':
		return l.lexLiteral("null", nullToken, pos)
	default:
		return token{}, l.errorf(pos, "invalid character %q", r)
	}
}

func (l *lexer) lexString(pos Position) (token, error) {
	var b strings.Builder
	for {
		r := l.consume()
		switch r {
		case eof:
			return token{}, l.errorf(pos, "unterminated string")
		case '"':
			return token{Type: stringToken, Str: b.String(), Pos: pos}, nil
		case '\\':
		default:
			b.WriteRune(r)
			continue
		}
		switch esc := l.consume(); esc {
		case eof:
			return token{}, l.errorf(pos, "unterminated string")
		case '"', '\\', '/':
			b.WriteRune(esc)
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			cp, err := l.lexCodePoint()
			if err != nil {
				return token{}, err
			}
			// Surrogate halves are not valid runes and are written as U+FFFD.
			b.WriteRune(cp)
		default:
			b.WriteByte('\\')
			b.WriteRune(esc)
		}
	}
}

// lexCodePoint reads the four hex digits following `\u`.
func (l *lexer) lexCodePoint() (rune, error) {
	var cp rune
	for i := 0; i < 4; i++ {
		pos := l.position()
		r := l.consume()
		var d rune
		switch {
		case '0' <= r && r <= '9':
			d = r - '0'
		case 'a' <= r && r <= 'f':
			d = r - 'a' + 10
		case 'A' <= r && r <= 'F':
			d = r - 'A' + 10
		case r == eof:
			return 0, l.errorf(pos, "invalid code point: unexpected end of input")
		default:
			return 0, l.errorf(pos, "invalid code point: %q is not a hex digit", r)
		}
		cp = cp<<4 | d
	}
	return cp, nil
}

type numState uint8

const (
	numMinus numState = iota
	numInt
	numIntZero
	numPoint
	numFrac
	numExp
	numExpInt
)

// lexNumber runs the number state machine starting after first. It only
// consumes characters that extend the lexeme; the first character that does
// not is left for the next token.
func (l *lexer) lexNumber(first rune, pos Position) (token, error) {
	var b strings.Builder
	b.WriteRune(first)
	state := numInt
	switch first {
	case '-':
		state = numMinus
	case '0':
		state = numIntZero
	}
	isFloat := false
loop:
	for {
		r := l.peek()
		switch state {
		case numMinus:
			switch {
			case r == '0':
				state = numIntZero
			case isDigit(r):
				state = numInt
			default:
				break loop
			}
		case numInt:
			switch {
			case isDigit(r):
			case r == '.':
				state = numPoint
			case r == 'e' || r == 'E':
				state = numExp
			default:
				break loop
			}
		case numIntZero:
			switch {
			case isDigit(r):
				return token{}, l.errorf(pos, "invalid number %q: leading zero", b.String()+string(r))
			case r == '.':
				state = numPoint
			case r == 'e' || r == 'E':
				state = numExp
			default:
				break loop
			}
		case numPoint:
			if !isDigit(r) {
				break loop
			}
			state = numFrac
		case numFrac:
			switch {
			case isDigit(r):
			case r == 'e' || r == 'E':
				state = numExp
			default:
				break loop
			}
		case numExp:
			if !isDigit(r) && r != '-' && r != '+' {
				break loop
			}
			state = numExpInt
		case numExpInt:
			if !isDigit(r) {
				break loop
			}
		}
		if state == numPoint || state == numExp {
			isFloat = true
		}
		b.WriteRune(l.consume())
	}
	lexeme := b.String()
	if !isDigit(rune(lexeme[len(lexeme)-1])) {
		return token{}, l.errorf(pos, "invalid number %q", lexeme)
	}
	num, err := parseNumber(lexeme, isFloat)
	if err != nil {
		return token{}, l.errorf(pos, "invalid number %q: out of range", lexeme)
	}
	return token{Type: numberToken, Num: num, Pos: pos}, nil
}

// lexLiteral consumes the rest of true, false or null. Its first character
// has already been consumed.
func (l *lexer) lexLiteral(want string, typ tokenType, pos Position) (token, error) {
	var b strings.Builder
	b.WriteByte(want[0])
	for i := 1; i < len(want); i++ {
		r := l.consume()
		if r == eof {
			return token{}, l.errorf(pos, "unexpected end of input in literal %q", b.String())
		}
		b.WriteRune(r)
	}
	if b.String() != want {
		return token{}, l.errorf(pos, "unexpected literal %q", b.String())
	}
	return token{Type: typ, Pos: pos}, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

package toyjson

import "fmt"

type tokenType uint8

const (
	eofToken tokenType = iota
	nullToken
	trueToken
	falseToken
	numberToken
	stringToken
	colonToken
	commaToken
	arrayOToken
	arrayCToken
	objectOToken
	objectCToken
)

// Position locates a character of the input. Offset counts runes from the
// start of the text, Line and Col start at 1.
type Position struct {
	Offset int
	Line   int
	Col    int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// token is produced by one lexer call and consumed by the parser that
// requested it. Str is set for stringToken, Num for numberToken.
type token struct {
	Type tokenType
	Str  string
	Num  Number
	Pos  Position
}

func punctToken(r rune, pos Position) (token, bool) {
	switch r {
	case '{':
		return token{Type: objectOToken, Pos: pos}, true
	case '}':
		return token{Type: objectCToken, Pos: pos}, true
	case '[':
		return token{Type: arrayOToken, Pos: pos}, true
	case ']':
		return token{Type: arrayCToken, Pos: pos}, true
	case ':':
		return token{Type: colonToken, Pos: pos}, true
	case ',':
		return token{Type: commaToken, Pos: pos}, true
	default:
		return token{}, false
	}
}

func (t tokenType) String() string {
	switch t {
	case eofToken:
		return "end of input"
	case nullToken:
		return "null"
	case trueToken:
		return "true"
	case falseToken:
		return "false"
	case numberToken:
		return "number"
	case stringToken:
		return "string"
	case colonToken:
		return "':'"
	case commaToken:
		return "','"
	case arrayOToken:
		return "'['"
	case arrayCToken:
		return "']'"
	case objectOToken:
		return "'{'"
	case objectCToken:
		return "'}'"
	default:
		return fmt.Sprintf("tokenType(%d)", uint8(t))
	}
}

// String generates a readable form of a token meant for error messages.
func (t token) String() string {
	switch t.Type {
	case numberToken:
		return "number " + t.Num.String()
	case stringToken:
		return fmt.Sprintf("string %q", t.Str)
	default:
		return t.Type.String()
	}
}

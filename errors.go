package toyjson

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotArrayOrObject is returned when a child is requested from a Value
// that is a standalone value.
var ErrNotArrayOrObject = errors.New("not array or object")

// ErrNoChild is returned when an array index or object key does not exist.
var ErrNoChild = errors.New("no such child")

// ErrMaxDepth is the cause of a SyntaxError raised for input nested deeper
// than Config.MaxDepth.
var ErrMaxDepth = errors.New("maximum nesting depth exceeded")

// LexicalError reports text that could not be split into tokens.
type LexicalError struct {
	Pos Position
	Msg string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at %s: %s", e.Pos, e.Msg)
}

// Where returns the line and column where the lexer stopped.
func (e *LexicalError) Where() (line, col int) {
	return e.Pos.Line, e.Pos.Col
}

// SyntaxError reports a token sequence that does not form a JSON value.
type SyntaxError struct {
	Pos   Position
	Msg   string
	token token
	cause error
}

func newSyntaxError(msg string, t token) *SyntaxError {
	return &SyntaxError{Pos: t.Pos, Msg: msg, token: t}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s: got %s", e.Pos, e.Msg, e.token)
}

// Where returns the line and column of the offending token.
func (e *SyntaxError) Where() (line, col int) {
	return e.Pos.Line, e.Pos.Col
}

// TokenKind names the kind of the offending token, e.g. "string" or "']'".
func (e *SyntaxError) TokenKind() string {
	return e.token.Type.String()
}

// TokenValue returns the decoded value of an offending string or number
// token and "" for every other kind.
func (e *SyntaxError) TokenValue() string {
	switch e.token.Type {
	case stringToken:
		return e.token.Str
	case numberToken:
		return e.token.Num.String()
	default:
		return ""
	}
}

// Unwrap returns the underlying error, if any.
func (e *SyntaxError) Unwrap() error { return e.cause }

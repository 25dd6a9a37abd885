package toyjson

import (
	"io"

	"github.com/pkg/errors"
)

// DefaultMaxDepth bounds the nesting of arrays and objects when
// Config.MaxDepth is zero.
const DefaultMaxDepth = 10000

// Config tunes a parse. The zero value is ready to use.
type Config struct {
	// MaxDepth is the maximum nesting of arrays and objects. Zero selects
	// DefaultMaxDepth, a negative value disables the limit.
	MaxDepth int
}

func (c Config) maxDepth() int {
	if c.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

// Parse decodes text, which must hold exactly one JSON value.
func (c Config) Parse(text string) (Value, error) {
	p := &parser{
		lex:      newLexer(text),
		maxDepth: c.maxDepth(),
	}
	return p.parse()
}

// Parse decodes text with the default Config.
// The error is a *LexicalError or a *SyntaxError.
func Parse(text string) (Value, error) {
	return Config{}.Parse(text)
}

// ParseBytes decodes data with the default Config.
func ParseBytes(data []byte) (Value, error) {
	return Parse(string(data))
}

// ParseReader reads r to the end and decodes its contents.
func (c Config) ParseReader(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, errors.Wrap(err, "read json")
	}
	return c.Parse(string(data))
}

// ParseReader reads r to the end and decodes its contents with the default
// Config.
func ParseReader(r io.Reader) (Value, error) {
	return Config{}.ParseReader(r)
}

// Valid reports whether text is a single valid JSON value.
func Valid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

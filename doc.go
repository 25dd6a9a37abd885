/*
Package toyjson decodes JSON text into a tree of Values.

The decoder is built from two cooperating parts: a lexer that turns the text
into tokens one call at a time, and a recursive-descent parser whose array and
object rules are explicit finite-state machines. Every Value returned by Parse
is complete; a failed parse never yields a partial tree.

Numbers keep their shape: a lexeme without fraction or exponent becomes an
integer Number, everything else a floating-point Number. Duplicate object
keys keep the position of their first occurrence and the value of their last.

Errors are either a *LexicalError (the text could not be tokenized) or a
*SyntaxError (the tokens do not form a JSON value). Both carry the line and
column where parsing stopped.
*/
package toyjson // import "github.com/d1ced/toyjson"

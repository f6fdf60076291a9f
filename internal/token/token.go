package token

import (
	"fmt"
	"strconv"
)

// Token represents a single expression token.
type Token struct {
	Kind Kind
	// Text is the original spelling: the operator symbol, function or
	// constant name, bracket character, or the literal as written.
	Text string
	// Value is the parsed number for Literal tokens, 0 otherwise.
	Value float64
	// Pos is the byte offset of the token's first character in the input.
	Pos int
}

// IsValue reports whether the token pushes a number during evaluation.
func (t Token) IsValue() bool {
	return t.Kind == Literal || t.Kind == Constant
}

// IsCallable reports whether the token names a registry entry.
func (t Token) IsCallable() bool {
	return t.Kind == Operator || t.Kind == Function
}

// String renders the token for debug output: literals by value,
// everything else by spelling.
func (t Token) String() string {
	if t.Kind == Literal {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return t.Text
}

// Lit constructs a Literal token.
func Lit(v float64, pos int) Token {
	return Token{Kind: Literal, Text: strconv.FormatFloat(v, 'g', -1, 64), Value: v, Pos: pos}
}

// Sym constructs a non-literal token of the given kind.
func Sym(k Kind, text string, pos int) Token {
	return Token{Kind: k, Text: text, Pos: pos}
}

// GoString makes test failure output readable.
func (t Token) GoString() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.String())
}

package diag

import (
	"errors"
	"fmt"
)

// SyntaxError is a hard failure in tokenizing, reordering or the shape of
// an evaluation: the input is not a well-formed expression.
type SyntaxError struct {
	Code    Code
	Message string
	// Pos is the byte offset the condition was detected at, -1 when the
	// condition has no useful position (e.g. leftover brackets at EOF).
	Pos int
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("syntax %s: %s (at offset %d)", e.Code, e.Message, e.Pos)
	}
	return fmt.Sprintf("syntax %s: %s", e.Code, e.Message)
}

// Syntaxf builds a SyntaxError with a formatted message.
func Syntaxf(code Code, pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Code: code, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// MathError is a hard arithmetic failure raised by a registry handler:
// the expression is well formed but the values fall outside a domain.
type MathError struct {
	Code Code
	// Op is the registry name of the failing operator or function.
	Op      string
	Message string
}

// Error implements the error interface.
func (e *MathError) Error() string {
	return fmt.Sprintf("math %s in %q: %s", e.Code, e.Op, e.Message)
}

// Mathf builds a MathError with a formatted message.
func Mathf(code Code, op, format string, args ...any) *MathError {
	return &MathError{Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
}

// IsSyntax reports whether err is (or wraps) a SyntaxError.
func IsSyntax(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// IsMath reports whether err is (or wraps) a MathError.
func IsMath(err error) bool {
	var me *MathError
	return errors.As(err, &me)
}

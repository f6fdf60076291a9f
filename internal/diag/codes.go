package diag

import "fmt"

// Code identifies the condition class of a calculator error.
type Code int

// Stable error codes - do not change values.
const (
	// Syntax conditions (tokenizer, reorderer, evaluator shape checks).

	BadChar          Code = 1001 // E1001: unrecognized character
	BadNumber        Code = 1002 // E1002: malformed numeric literal
	MismatchedParens Code = 1003 // E1003: unbalanced brackets
	UnknownName      Code = 1004 // E1004: name missing from the registry
	UnexpectedToken  Code = 1005 // E1005: token kind invalid during evaluation
	StackUnderflow   Code = 1006 // E1006: operand stack exhausted
	UnknownConstant  Code = 1007 // E1007: constant set out of sync with lexer

	// Arithmetic conditions (registry handlers).

	DivisionByZero Code = 2001 // E2001: zero divisor for / or %
	DomainError    Code = 2002 // E2002: argument outside the handler's domain
	NotAnInteger   Code = 2003 // E2003: integral input required
)

// String returns the code as "E1001" format.
func (c Code) String() string {
	return fmt.Sprintf("E%d", c)
}

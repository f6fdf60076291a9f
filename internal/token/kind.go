package token

// Kind represents the category of an expression token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Literal represents a floating-point number literal.
	Literal
	// Constant represents a named built-in constant (e, pi).
	Constant
	// Function represents an identifier that is not a constant name.
	Function
	// Operator represents one of the infix operator symbols.
	Operator
	// LParen represents an open bracket, ( or [.
	LParen
	// RParen represents a close bracket, ) or ].
	RParen
	// Separator represents the argument separator, a comma.
	Separator
)

// String returns the kind name used by debug output.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Constant:
		return "Constant"
	case Function:
		return "Function"
	case Operator:
		return "Operator"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Separator:
		return "Separator"
	default:
		return "Invalid"
	}
}

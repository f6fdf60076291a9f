package token

// Assoc is the associativity of an infix operator.
type Assoc uint8

const (
	// AssocLeft groups equal-precedence chains to the left: a-b-c = (a-b)-c.
	AssocLeft Assoc = iota
	// AssocRight groups them to the right: a^b^c = a^(b^c).
	AssocRight
)

// OpSpec describes one infix operator: higher Prec binds tighter.
type OpSpec struct {
	Prec  int
	Assoc Assoc
}

// ops is the complete infix operator table. The reorderer consults it;
// the lexer treats exactly these symbols as Operator tokens.
var ops = map[string]OpSpec{
	"+": {Prec: 2, Assoc: AssocLeft},
	"-": {Prec: 2, Assoc: AssocLeft},
	"/": {Prec: 3, Assoc: AssocLeft},
	"*": {Prec: 3, Assoc: AssocLeft},
	"^": {Prec: 4, Assoc: AssocRight},
}

// LookupOp returns the spec for an operator symbol.
func LookupOp(sym string) (OpSpec, bool) {
	spec, ok := ops[sym]
	return spec, ok
}

// IsOpRune reports whether r is one of the infix operator symbols.
func IsOpRune(r rune) bool {
	_, ok := ops[string(r)]
	return ok
}

// Package eval drives a postfix token stream through a LIFO value stack.
// Operator and function semantics live in a closed name-keyed registry;
// the answer register records the result of every application.
package eval

import (
	"math"

	"rpncalc/internal/diag"
	"rpncalc/internal/token"
)

// Calculator evaluates postfix token streams. Each instance carries its
// own answer register, so independent calculators have independent
// histories. A Calculator must not be used from multiple goroutines.
type Calculator struct {
	ans float64
}

// New returns a calculator with the answer register zeroed.
func New() *Calculator {
	return &Calculator{}
}

// Ans returns the answer register: the result of the most recent
// operator or function application.
func (c *Calculator) Ans() float64 {
	return c.ans
}

// SetAns overwrites the answer register. Used when restoring a
// persisted session.
func (c *Calculator) SetAns(v float64) {
	c.ans = v
}

// Eval runs a postfix token stream against st and returns the resulting
// stack. A nil st starts a fresh stack; passing a previous result allows
// interactive accumulation across calls. The returned stack is not
// required to hold exactly one value - see Stack.Settled.
func (c *Calculator) Eval(toks []token.Token, st Stack) (Stack, error) {
	if st == nil {
		st = make(Stack, 0, 8)
	}

	for _, tok := range toks {
		switch tok.Kind {
		case token.Literal:
			st.Push(tok.Value)

		case token.Constant:
			switch tok.Text {
			case "e":
				st.Push(math.E)
			case "pi":
				st.Push(math.Pi)
			default:
				// Лексер и этот набор констант обязаны совпадать.
				return st, diag.Syntaxf(diag.UnknownConstant, tok.Pos, "unknown constant %q", tok.Text)
			}

		case token.Separator:
			// Разделитель значим только для перестановки, здесь no-op.

		case token.Operator, token.Function:
			handle, ok := registry[tok.Text]
			if !ok {
				return st, diag.Syntaxf(diag.UnknownName, tok.Pos, "unknown operator/function %q", tok.Text)
			}
			v, err := handle(c, &st)
			if err != nil {
				return st, err
			}
			c.ans = v
			st.Push(v)

		default:
			return st, diag.Syntaxf(diag.UnexpectedToken, tok.Pos, "unexpected %s token", tok.Kind)
		}
	}

	return st, nil
}

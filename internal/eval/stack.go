package eval

import "rpncalc/internal/diag"

// Stack is the LIFO operand stack driven by evaluation. It is owned by one
// evaluation session at a time and may deliberately be left with more (or
// fewer) than one value between interactive commands.
type Stack []float64

// Push appends a value on top of the stack.
func (s *Stack) Push(v float64) {
	*s = append(*s, v)
}

// Pop removes and returns the top value. Underflow is a syntax-class
// condition: the expression asked for more operands than it supplied.
func (s *Stack) Pop() (float64, error) {
	if len(*s) == 0 {
		return 0, diag.Syntaxf(diag.StackUnderflow, -1, "operand stack is empty")
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v, nil
}

// PopPair removes the top two values: left is the deeper operand, right
// the top one. Binary operators compute left OP right.
func (s *Stack) PopPair() (left, right float64, err error) {
	right, err = s.Pop()
	if err != nil {
		return 0, 0, err
	}
	left, err = s.Pop()
	if err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

// Drain removes and returns every value currently on the stack, bottom
// first. The variadic reducers consume their input this way.
func (s *Stack) Drain() []float64 {
	vals := *s
	*s = (*s)[:0]
	return vals
}

// Settled reports whether the stack holds exactly one value. This is the
// advisory condition from evaluation: callers that stage multiple values
// across commands simply ignore it.
func (s Stack) Settled() bool {
	return len(s) == 1
}

// Clone returns an independent copy, used to keep a session's stack
// intact when a command fails mid-evaluation.
func (s Stack) Clone() Stack {
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

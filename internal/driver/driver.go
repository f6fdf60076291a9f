// Package driver wires the pipeline stages together: tokenize, reorder,
// evaluate. The CLI and the REPL both go through it.
package driver

import (
	"rpncalc/internal/eval"
	"rpncalc/internal/lexer"
	"rpncalc/internal/shunt"
	"rpncalc/internal/token"
)

// ExprResult is the outcome of one full infix evaluation.
type ExprResult struct {
	// RPN is the reordered (postfix) token stream, kept for display.
	RPN []token.Token
	// Stack is the final evaluation stack, normally a single value.
	Stack eval.Stack
}

// EvalExpr runs the full infix pipeline on a fresh stack:
// text -> tokens -> postfix tokens -> stack.
func EvalExpr(calc *eval.Calculator, expr string) (ExprResult, error) {
	toks, err := lexer.Tokenize(expr)
	if err != nil {
		return ExprResult{}, err
	}
	rpn, err := shunt.Reorder(toks)
	if err != nil {
		return ExprResult{}, err
	}
	st, err := calc.Eval(rpn, nil)
	if err != nil {
		return ExprResult{RPN: rpn}, err
	}
	return ExprResult{RPN: rpn, Stack: st}, nil
}

// EvalRPN tokenizes expr and evaluates it as-is against st, without
// reordering. Interactive sessions take postfix input and accumulate
// operands on a carried-over stack.
func EvalRPN(calc *eval.Calculator, expr string, st eval.Stack) (eval.Stack, error) {
	toks, err := lexer.Tokenize(expr)
	if err != nil {
		return st, err
	}
	return calc.Eval(toks, st)
}

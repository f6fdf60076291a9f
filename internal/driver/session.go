package driver

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"rpncalc/internal/eval"
)

// Meta-commands handled by interactive sessions.
const (
	CmdQuit  = "quit"
	CmdExit  = "exit"
	CmdPop   = "pop"
	CmdClear = "clear"
)

// Session is the state carried across interactive commands: one
// calculator (with its answer register) and the staged operand stack.
type Session struct {
	Calc  *eval.Calculator
	Stack eval.Stack
}

// NewSession returns a session with a fresh calculator and empty stack.
func NewSession() *Session {
	return &Session{Calc: eval.New(), Stack: make(eval.Stack, 0, 8)}
}

// Exec runs one input line: a meta-command or a postfix expression
// evaluated against the carried-over stack. done is true for quit/exit.
// On a hard condition the stack is left exactly as before the line.
func (s *Session) Exec(line string) (done bool, err error) {
	switch strings.TrimSpace(line) {
	case CmdQuit, CmdExit:
		return true, nil
	case CmdPop:
		if _, err := s.Stack.Pop(); err != nil {
			return false, err
		}
		return false, nil
	case CmdClear:
		s.Stack = s.Stack[:0]
		return false, nil
	}

	// Вычисляем на копии: при ошибке стек остаётся прежним.
	next, err := EvalRPN(s.Calc, line, s.Stack.Clone())
	if err != nil {
		return false, err
	}
	s.Stack = next
	return false, nil
}

// Lines renders the stack bottom-up, one indexed value per line, each
// value rounded to prec decimal places.
func (s *Session) Lines(prec int) []string {
	out := make([]string, len(s.Stack))
	for i, v := range s.Stack {
		out[i] = fmt.Sprintf("%2d: %s", i, FormatValue(v, prec))
	}
	return out
}

// FormatValue rounds v to prec decimal places and renders it in the
// shortest form that survives the rounding.
func FormatValue(v float64, prec int) string {
	if prec >= 0 {
		p := math.Pow(10, float64(prec))
		if r := math.Round(v * p); !math.IsInf(r, 0) {
			v = r / p
		}
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

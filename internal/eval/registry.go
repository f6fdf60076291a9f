package eval

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"fortio.org/safecast"

	"rpncalc/internal/diag"
)

// handler consumes its operands from the top of the stack and returns one
// value. The evaluator records the value into the answer register and
// pushes it back.
type handler func(c *Calculator, st *Stack) (float64, error)

// registry is the complete vocabulary of the expression language. The
// set is closed: there is no runtime registration.
var registry = map[string]handler{
	// Вариадические свёртки: выгребают стек целиком.
	"++": reduce(0, func(acc, v float64) float64 { return acc + v }),
	"**": reduce(1, func(acc, v float64) float64 { return acc * v }),

	"+": binary("+", func(l, r float64) (float64, error) { return l + r, nil }),
	"-": binary("-", func(l, r float64) (float64, error) { return l - r, nil }),
	"*": binary("*", func(l, r float64) (float64, error) { return l * r, nil }),
	"/": binary("/", func(l, r float64) (float64, error) {
		if r == 0 {
			return 0, diag.Mathf(diag.DivisionByZero, "/", "division by zero")
		}
		return l / r, nil
	}),
	"%": binary("%", func(l, r float64) (float64, error) {
		if r == 0 {
			return 0, diag.Mathf(diag.DivisionByZero, "%", "modulo by zero")
		}
		return math.Mod(l, r), nil
	}),
	"^": binary("^", func(l, r float64) (float64, error) { return math.Pow(l, r), nil }),

	"!": factorial,

	"ln": unary("ln", func(v float64) (float64, error) {
		if v <= 0 {
			return 0, diag.Mathf(diag.DomainError, "ln", "log of non-positive %v", v)
		}
		return math.Log(v), nil
	}),
	// log берёт основание с вершины стека, операнд - под ним.
	"log": binary("log", func(l, r float64) (float64, error) {
		if l <= 0 {
			return 0, diag.Mathf(diag.DomainError, "log", "log of non-positive %v", l)
		}
		if r <= 0 || r == 1 {
			return 0, diag.Mathf(diag.DomainError, "log", "invalid base %v", r)
		}
		return math.Log(l) / math.Log(r), nil
	}),
	"log2": unary("log2", func(v float64) (float64, error) {
		if v <= 0 {
			return 0, diag.Mathf(diag.DomainError, "log2", "log of non-positive %v", v)
		}
		return math.Log2(v), nil
	}),
	"log10": unary("log10", func(v float64) (float64, error) {
		if v <= 0 {
			return 0, diag.Mathf(diag.DomainError, "log10", "log of non-positive %v", v)
		}
		return math.Log10(v), nil
	}),

	"sqrt": unary("sqrt", func(v float64) (float64, error) {
		if v < 0 {
			return 0, diag.Mathf(diag.DomainError, "sqrt", "square root of negative %v", v)
		}
		return math.Sqrt(v), nil
	}),
	"exp": unary("exp", ok1(math.Exp)),

	"sin":  unary("sin", ok1(math.Sin)),
	"cos":  unary("cos", ok1(math.Cos)),
	"tan":  unary("tan", ok1(math.Tan)),
	"sinh": unary("sinh", ok1(math.Sinh)),
	"cosh": unary("cosh", ok1(math.Cosh)),
	"tanh": unary("tanh", ok1(math.Tanh)),

	"arcsin": unary("arcsin", func(v float64) (float64, error) {
		if v < -1 || v > 1 {
			return 0, diag.Mathf(diag.DomainError, "arcsin", "%v outside [-1, 1]", v)
		}
		return math.Asin(v), nil
	}),
	"arccos": unary("arccos", func(v float64) (float64, error) {
		if v < -1 || v > 1 {
			return 0, diag.Mathf(diag.DomainError, "arccos", "%v outside [-1, 1]", v)
		}
		return math.Acos(v), nil
	}),
	"arctan":  unary("arctan", ok1(math.Atan)),
	"arcsinh": unary("arcsinh", ok1(math.Asinh)),
	"arccosh": unary("arccosh", func(v float64) (float64, error) {
		if v < 1 {
			return 0, diag.Mathf(diag.DomainError, "arccosh", "%v below 1", v)
		}
		return math.Acosh(v), nil
	}),
	"arctanh": unary("arctanh", func(v float64) (float64, error) {
		if v <= -1 || v >= 1 {
			return 0, diag.Mathf(diag.DomainError, "arctanh", "%v outside (-1, 1)", v)
		}
		return math.Atanh(v), nil
	}),

	"max": binary("max", func(l, r float64) (float64, error) { return math.Max(l, r), nil }),
	"min": binary("min", func(l, r float64) (float64, error) { return math.Min(l, r), nil }),
	"abs": unary("abs", ok1(math.Abs)),

	"rand": func(_ *Calculator, _ *Stack) (float64, error) {
		return rand.Float64(), nil
	},
	"ans": func(c *Calculator, _ *Stack) (float64, error) {
		return c.ans, nil
	},
}

// Names returns the registry vocabulary in sorted order, for completion.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unary builds a handler popping exactly one operand.
func unary(op string, f func(v float64) (float64, error)) handler {
	return func(_ *Calculator, st *Stack) (float64, error) {
		v, err := st.Pop()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		return f(v)
	}
}

// binary builds a handler popping the top as the right operand and the
// next value as the left one.
func binary(op string, f func(l, r float64) (float64, error)) handler {
	return func(_ *Calculator, st *Stack) (float64, error) {
		l, r, err := st.PopPair()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		return f(l, r)
	}
}

// reduce builds a variadic handler folding the entire stack.
func reduce(start float64, f func(acc, v float64) float64) handler {
	return func(_ *Calculator, st *Stack) (float64, error) {
		acc := start
		for _, v := range st.Drain() {
			acc = f(acc, v)
		}
		return acc, nil
	}
}

// factorial expects a non-negative integral operand.
func factorial(_ *Calculator, st *Stack) (float64, error) {
	v, err := st.Pop()
	if err != nil {
		return 0, fmt.Errorf("!: %w", err)
	}
	n, err := safecast.Convert[int64](v)
	if err != nil {
		return 0, diag.Mathf(diag.NotAnInteger, "!", "factorial of non-integer %v", v)
	}
	if n < 0 {
		return 0, diag.Mathf(diag.DomainError, "!", "factorial of negative %d", n)
	}
	acc := 1.0
	for i := int64(2); i <= n; i++ {
		acc *= float64(i)
	}
	return acc, nil
}

// ok1 адаптирует math-функции без условий ошибки под сигнатуру unary.
func ok1(f func(float64) float64) func(float64) (float64, error) {
	return func(v float64) (float64, error) {
		return f(v), nil
	}
}

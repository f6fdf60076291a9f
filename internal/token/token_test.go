package token_test

import (
	"testing"

	"rpncalc/internal/token"
)

func TestLookupOp(t *testing.T) {
	cases := []struct {
		sym   string
		prec  int
		assoc token.Assoc
	}{
		{"+", 2, token.AssocLeft},
		{"-", 2, token.AssocLeft},
		{"/", 3, token.AssocLeft},
		{"*", 3, token.AssocLeft},
		{"^", 4, token.AssocRight},
	}
	for _, tc := range cases {
		spec, ok := token.LookupOp(tc.sym)
		if !ok {
			t.Fatalf("LookupOp(%q): not found", tc.sym)
		}
		if spec.Prec != tc.prec || spec.Assoc != tc.assoc {
			t.Errorf("LookupOp(%q) = %+v, want prec %d assoc %v", tc.sym, spec, tc.prec, tc.assoc)
		}
	}

	if _, ok := token.LookupOp("%"); ok {
		t.Error("%% is a registry name, not an infix operator")
	}
	if !token.IsOpRune('^') || token.IsOpRune('!') {
		t.Error("IsOpRune must cover exactly the infix symbols")
	}
}

func TestTokenPredicates(t *testing.T) {
	if !token.Lit(1, 0).IsValue() || !token.Sym(token.Constant, "pi", 0).IsValue() {
		t.Error("literals and constants are values")
	}
	if token.Sym(token.Function, "sin", 0).IsValue() {
		t.Error("functions are not values")
	}
	if !token.Sym(token.Operator, "+", 0).IsCallable() || !token.Sym(token.Function, "sin", 0).IsCallable() {
		t.Error("operators and functions are callable")
	}
	if token.Sym(token.LParen, "(", 0).IsCallable() {
		t.Error("brackets are not callable")
	}
}

func TestTokenString(t *testing.T) {
	if got := token.Lit(2.5, 0).String(); got != "2.5" {
		t.Errorf("literal String() = %q, want \"2.5\"", got)
	}
	if got := token.Sym(token.Operator, "^", 0).String(); got != "^" {
		t.Errorf("operator String() = %q, want \"^\"", got)
	}
	if got := token.Separator.String(); got != "Separator" {
		t.Errorf("kind String() = %q", got)
	}
}

package lexer_test

import (
	"errors"
	"testing"

	"rpncalc/internal/diag"
	"rpncalc/internal/lexer"
	"rpncalc/internal/token"
)

// lit строит литеральный токен без позиции, для сравнения по виду и значению
func lit(v float64) tok { return tok{kind: token.Literal, value: v} }

func sym(k token.Kind, text string) tok { return tok{kind: k, text: text} }

type tok struct {
	kind  token.Kind
	text  string
	value float64
}

func checkTokens(t *testing.T, input string, want []tok) {
	t.Helper()
	got, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q): unexpected error: %v", input, err)
	}
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %#v, want %d tokens", input, got, len(want))
	}
	for i, w := range want {
		g := got[i]
		if g.Kind != w.kind {
			t.Errorf("token %d of %q: kind = %s, want %s", i, input, g.Kind, w.kind)
		}
		if w.kind == token.Literal {
			if g.Value != w.value {
				t.Errorf("token %d of %q: value = %v, want %v", i, input, g.Value, w.value)
			}
		} else if g.Text != w.text {
			t.Errorf("token %d of %q: text = %q, want %q", i, input, g.Text, w.text)
		}
	}
}

func TestTokenizeBasic(t *testing.T) {
	cases := []struct {
		input string
		want  []tok
	}{
		{"3+4*2", []tok{lit(3), sym(token.Operator, "+"), lit(4), sym(token.Operator, "*"), lit(2)}},
		{"(3+4)*2", []tok{
			sym(token.LParen, "("), lit(3), sym(token.Operator, "+"), lit(4),
			sym(token.RParen, ")"), sym(token.Operator, "*"), lit(2),
		}},
		{"2^3^2", []tok{lit(2), sym(token.Operator, "^"), lit(3), sym(token.Operator, "^"), lit(2)}},
		{"  12.5  ", []tok{lit(12.5)}},
		{".5", []tok{lit(0.5)}},
		{"max(1, 2)", []tok{
			sym(token.Function, "max"), sym(token.LParen, "("), lit(1),
			sym(token.Separator, ","), lit(2), sym(token.RParen, ")"),
		}},
		// Квадратные скобки равнозначны круглым, даже вперемешку.
		{"[3+4)", []tok{sym(token.LParen, "["), lit(3), sym(token.Operator, "+"), lit(4), sym(token.RParen, ")")}},
		{"sin(pi)", []tok{
			sym(token.Function, "sin"), sym(token.LParen, "("),
			sym(token.Constant, "pi"), sym(token.RParen, ")"),
		}},
		{"e", []tok{sym(token.Constant, "e")}},
		{"foo(1)", []tok{sym(token.Function, "foo"), sym(token.LParen, "("), lit(1), sym(token.RParen, ")")}},
		// Цифровой буфер завершается буквой.
		{"2pi", []tok{lit(2), sym(token.Constant, "pi")}},
	}
	for _, tc := range cases {
		checkTokens(t, tc.input, tc.want)
	}
}

func TestTokenizeMinus(t *testing.T) {
	cases := []struct {
		input string
		want  []tok
	}{
		// Ведущий минус прилипает к литералу.
		{"-5", []tok{lit(-5)}},
		{"-.5", []tok{lit(-0.5)}},
		// Минус после начатого числа — вычитание.
		{"3-4", []tok{lit(3), sym(token.Operator, "-"), lit(4)}},
		{"1.5-2", []tok{lit(1.5), sym(token.Operator, "-"), lit(2)}},
		{"3--4", []tok{lit(3), sym(token.Operator, "-"), lit(-4)}},
		// Одинокий минус между другими токенами — оператор.
		{"pi - e", []tok{sym(token.Constant, "pi"), sym(token.Operator, "-"), sym(token.Constant, "e")}},
		{"pi-e", []tok{sym(token.Constant, "pi"), sym(token.Operator, "-"), sym(token.Constant, "e")}},
		// После скобки минус начинает новый литерал (поведение оригинала).
		{"(1)-4", []tok{sym(token.LParen, "("), lit(1), sym(token.RParen, ")"), lit(-4)}},
	}
	for _, tc := range cases {
		checkTokens(t, tc.input, tc.want)
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		input string
		code  diag.Code
	}{
		{"3 $ 4", diag.BadChar},
		{"1 ? 2", diag.BadChar},
		{"3.4.5", diag.BadNumber},
		{"--4", diag.BadNumber},
	}
	for _, tc := range cases {
		_, err := lexer.Tokenize(tc.input)
		if err == nil {
			t.Fatalf("Tokenize(%q): expected error", tc.input)
		}
		var se *diag.SyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("Tokenize(%q): error %v is not a SyntaxError", tc.input, err)
		}
		if se.Code != tc.code {
			t.Errorf("Tokenize(%q): code = %s, want %s", tc.input, se.Code, tc.code)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := lexer.Tokenize("10 + sin(2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantPos := []int{0, 3, 5, 8, 9, 10}
	if len(toks) != len(wantPos) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantPos))
	}
	for i, p := range wantPos {
		if toks[i].Pos != p {
			t.Errorf("token %d (%s): pos = %d, want %d", i, toks[i], toks[i].Pos, p)
		}
	}
}

package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"rpncalc/internal/diag"
	"rpncalc/internal/token"
)

// Lexer накапливает два буфера (буквы и цифры) и сбрасывает их в токены.
type Lexer struct {
	input string
	out   []token.Token

	// Буферы хранятся как полуинтервалы [start, end) во входной строке.
	letters span
	digits  span
}

type span struct {
	start, end int
}

func (s span) empty() bool { return s.start >= s.end }

// Tokenize splits a raw expression into tokens. It fails with a
// diag.SyntaxError on an unrecognized character or a malformed number.
func Tokenize(input string) ([]token.Token, error) {
	lx := &Lexer{input: input, out: make([]token.Token, 0, 8)}
	return lx.run()
}

func (lx *Lexer) run() ([]token.Token, error) {
	for i, r := range lx.input {
		if err := lx.step(i, r); err != nil {
			return nil, err
		}
	}
	// финальный сброс буферов
	if err := lx.flush(); err != nil {
		return nil, err
	}
	return lx.out, nil
}

func (lx *Lexer) step(i int, r rune) error {
	switch {
	case unicode.IsDigit(r) || r == '.':
		lx.extend(&lx.digits, i, r)

	case r == '-':
		// Минус контекстно-зависим: внутри начатого числа это вычитание,
		// иначе — знак будущего литерала. См. DESIGN.md.
		if lx.digitsHaveDigit() {
			if err := lx.flush(); err != nil {
				return err
			}
			lx.emit(token.Sym(token.Operator, "-", i))
			return nil
		}
		lx.extend(&lx.digits, i, r)

	case unicode.IsLetter(r):
		// Буква завершает числовой буфер (случай "2pi" и т.п.).
		if !lx.digits.empty() {
			if err := lx.flush(); err != nil {
				return err
			}
		}
		lx.extend(&lx.letters, i, r)

	case token.IsOpRune(r):
		if err := lx.flush(); err != nil {
			return err
		}
		lx.emit(token.Sym(token.Operator, string(r), i))

	case r == '(' || r == '[':
		if err := lx.flush(); err != nil {
			return err
		}
		lx.emit(token.Sym(token.LParen, string(r), i))

	case r == ')' || r == ']':
		if err := lx.flush(); err != nil {
			return err
		}
		lx.emit(token.Sym(token.RParen, string(r), i))

	case r == ',':
		if err := lx.flush(); err != nil {
			return err
		}
		lx.emit(token.Sym(token.Separator, ",", i))

	case unicode.IsSpace(r):
		if err := lx.flush(); err != nil {
			return err
		}

	default:
		return diag.Syntaxf(diag.BadChar, i, "unexpected %q", r)
	}
	return nil
}

// extend прикрепляет руну к буферу; пустой буфер начинается с позиции i.
func (lx *Lexer) extend(s *span, i int, r rune) {
	if s.empty() {
		s.start = i
	}
	s.end = i + utf8.RuneLen(r)
}

func (lx *Lexer) emit(t token.Token) {
	lx.out = append(lx.out, t)
}

// digitsHaveDigit reports whether the numeric buffer holds at least one
// digit or decimal point (i.e. is more than a pending sign).
func (lx *Lexer) digitsHaveDigit() bool {
	return strings.ContainsFunc(lx.input[lx.digits.start:lx.digits.end], func(r rune) bool {
		return unicode.IsDigit(r) || r == '.'
	})
}

// flush сбрасывает оба буфера: сначала буквенный, затем числовой.
func (lx *Lexer) flush() error {
	if !lx.letters.empty() {
		name := lx.input[lx.letters.start:lx.letters.end]
		kind := token.Function
		if name == "e" || name == "pi" {
			kind = token.Constant
		}
		lx.emit(token.Sym(kind, name, lx.letters.start))
		lx.letters = span{}
	}
	if !lx.digits.empty() {
		text := lx.input[lx.digits.start:lx.digits.end]
		start := lx.digits.start
		lx.digits = span{}
		if text == "-" {
			// Одинокий минус — это оператор вычитания, а не число.
			lx.emit(token.Sym(token.Operator, "-", start))
			return nil
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return diag.Syntaxf(diag.BadNumber, start, "malformed number %q", text)
		}
		lx.emit(token.Token{Kind: token.Literal, Text: text, Value: v, Pos: start})
	}
	return nil
}

// Package shunt reorders an infix token stream into postfix (RPN) order
// with the shunting-yard algorithm. Operator precedence and associativity
// come from the shared table in the token package.
package shunt

import (
	"rpncalc/internal/diag"
	"rpncalc/internal/token"
)

// Reorder converts tokens from infix to postfix order. It fails with a
// diag.SyntaxError when brackets are unbalanced.
func Reorder(toks []token.Token) ([]token.Token, error) {
	output := make([]token.Token, 0, len(toks))
	// Операторный стек держит только Operator, Function и LParen.
	stack := make([]token.Token, 0, 8)

	for _, tok := range toks {
		switch tok.Kind {
		case token.Literal, token.Constant:
			output = append(output, tok)

		case token.Function:
			stack = append(stack, tok)

		case token.Separator:
			// Выталкиваем операторы до открывающей скобки; сама скобка
			// остаётся на стеке до RParen.
			for len(stack) > 0 && stack[len(stack)-1].Kind != token.LParen {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, diag.Syntaxf(diag.MismatchedParens, tok.Pos, "mismatched parentheses")
			}

		case token.Operator:
			cur, ok := token.LookupOp(tok.Text)
			if !ok {
				// Таблица операторов и лексер рассинхронизированы.
				return nil, diag.Syntaxf(diag.UnknownName, tok.Pos, "operator %q has no precedence", tok.Text)
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != token.Operator {
					break
				}
				topSpec, _ := token.LookupOp(top.Text)
				// Левоассоциативный оператор уступает равному приоритету,
				// правоассоциативный — только строго большему.
				if !(cur.Assoc == token.AssocLeft && cur.Prec <= topSpec.Prec ||
					cur.Assoc == token.AssocRight && cur.Prec < topSpec.Prec) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case token.LParen:
			stack = append(stack, tok)

		case token.RParen:
			for len(stack) > 0 && stack[len(stack)-1].Kind != token.LParen {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, diag.Syntaxf(diag.MismatchedParens, tok.Pos, "mismatched parentheses")
			}
			stack = stack[:len(stack)-1] // отбрасываем LParen
			// Скобка закрыла вызов функции — функция уходит в выход.
			if len(stack) > 0 && stack[len(stack)-1].Kind == token.Function {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}

		default:
			return nil, diag.Syntaxf(diag.UnexpectedToken, tok.Pos, "unexpected %s token", tok.Kind)
		}
	}

	// Остаток стека уходит в выход; скобки там означают дисбаланс.
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Kind == token.LParen || top.Kind == token.RParen {
			return nil, diag.Syntaxf(diag.MismatchedParens, top.Pos, "mismatched parentheses")
		}
		output = append(output, top)
		stack = stack[:len(stack)-1]
	}

	return output, nil
}

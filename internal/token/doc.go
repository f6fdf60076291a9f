// Package token defines the lexical token kinds shared by the tokenizer,
// the postfix reorderer and the evaluator.
// Invariants:
//   - Token.Text preserves the exact spelling from the input.
//   - Token.Value is meaningful only for Literal tokens.
//   - Token order is semantic: a token slice encodes expression structure.
//   - Constant names (e, pi) are classified by the lexer; every other
//     identifier is a Function and is resolved by the evaluator's registry.
package token

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rpncalc/internal/lexer"
	"rpncalc/internal/shunt"
)

var rpnCmd = &cobra.Command{
	Use:   "rpn [flags] expression",
	Short: "Print the postfix (RPN) form of an infix expression",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRPN,
}

func runRPN(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")

	toks, err := lexer.Tokenize(expr)
	if err != nil {
		return err
	}
	rpn, err := shunt.Reorder(toks)
	if err != nil {
		return err
	}

	parts := make([]string, len(rpn))
	for i, tok := range rpn {
		parts[i] = tok.String()
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rpncalc/internal/config"
	"rpncalc/internal/driver"
	"rpncalc/internal/eval"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [expression...]",
	Short: "Evaluate infix expressions",
	Long: `Eval reorders an infix expression into RPN and evaluates it.
Expressions come from the arguments, or one per line from stdin when piped.`,
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	cfg, _, err := config.Load("")
	if err != nil {
		return err
	}

	var exprs []string
	if len(args) > 0 {
		exprs = []string{strings.Join(args, " ")}
	} else {
		if isTerminal(os.Stdin) {
			return fmt.Errorf("no expression given (pass arguments or pipe stdin)")
		}
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				exprs = append(exprs, line)
			}
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}

	// Один калькулятор на все строки: регистр ans переживает команды.
	calc := eval.New()
	for _, expr := range exprs {
		res, err := driver.EvalExpr(calc, expr)
		if err != nil {
			return err
		}
		if !quiet {
			parts := make([]string, len(res.RPN))
			for i, tok := range res.RPN {
				parts[i] = tok.String()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "RPN: %s\n", strings.Join(parts, " "))
		}
		for _, v := range res.Stack {
			fmt.Fprintf(cmd.OutOrStdout(), " => %s\n", driver.FormatValue(v, cfg.Display.Precision))
		}
	}
	return nil
}

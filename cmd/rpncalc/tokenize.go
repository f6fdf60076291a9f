package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"rpncalc/internal/lexer"
	"rpncalc/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] expression",
	Short: "Tokenize an expression",
	Long:  `Tokenize breaks down an expression into its constituent tokens`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	toks, err := lexer.Tokenize(expr)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	switch format {
	case "pretty":
		return formatTokensPretty(cmd.OutOrStdout(), toks)
	case "json":
		return formatTokensJSON(cmd.OutOrStdout(), toks)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

type tokenOutput struct {
	Kind  string   `json:"kind"`
	Text  string   `json:"text"`
	Value *float64 `json:"value,omitempty"`
	Pos   int      `json:"pos"`
}

// formatTokensPretty выводит токены в человекочитаемом формате
func formatTokensPretty(w io.Writer, toks []token.Token) error {
	for i, tok := range toks {
		fmt.Fprintf(w, "%3d: %-10s %q at %d\n", i+1, tok.Kind.String(), tok.Text, tok.Pos)
	}
	return nil
}

// formatTokensJSON выводит токены в JSON формате
func formatTokensJSON(w io.Writer, toks []token.Token) error {
	output := make([]tokenOutput, 0, len(toks))
	for _, tok := range toks {
		out := tokenOutput{Kind: tok.Kind.String(), Text: tok.Text, Pos: tok.Pos}
		if tok.Kind == token.Literal {
			v := tok.Value
			out.Value = &v
		}
		output = append(output, out)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

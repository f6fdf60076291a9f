package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rpncalc/internal/config"
	"rpncalc/internal/driver"
	"rpncalc/internal/eval"
	"rpncalc/internal/session"
	"rpncalc/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive RPN session",
	Long: `Repl starts the interactive calculator: postfix input against a
carried-over stack, plus the meta-commands pop, clear, quit and exit.`,
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin) {
		return fmt.Errorf("repl needs a terminal (use eval for piped input)")
	}

	cfg, _, err := config.Load("")
	if err != nil {
		return err
	}

	sess := driver.NewSession()
	var history []string

	// Восстанавливаем сохранённую сессию, если включено в конфиге.
	var store *session.Store
	if cfg.Session.Persist {
		store, err = session.Open("rpncalc")
		if err != nil {
			return fmt.Errorf("failed to open session store: %w", err)
		}
		if payload, ok, err := store.Load(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring saved session: %v\n", err)
		} else if ok {
			sess.Stack = eval.Stack(payload.Stack)
			sess.Calc.SetAns(payload.Ans)
			history = payload.History
		}
	}

	model := ui.New(sess, cfg, history)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return err
	}

	if store != nil {
		payload := &session.Payload{
			Stack:   model.Session().Stack,
			Ans:     model.Session().Calc.Ans(),
			History: model.History(),
		}
		if err := store.Save(payload); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to save session: %v\n", err)
		}
	}
	return nil
}

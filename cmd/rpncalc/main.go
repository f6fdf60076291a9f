package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rpncalc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rpncalc",
	Short: "Infix and RPN expression calculator",
	Long:  `rpncalc evaluates infix math expressions by reordering them into RPN, and runs an interactive RPN session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Без подкоманды на терминале запускаем интерактивный режим.
		if isTerminal(os.Stdin) {
			return runRepl(cmd, args)
		}
		return cmd.Help()
	},
}

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(rpnCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	cobra.OnInitialize(applyColorMode)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyColorMode синхронизирует флаг --color с fatih/color
func applyColorMode() {
	switch mode, _ := rootCmd.PersistentFlags().GetString("color"); mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rpncalc/internal/config"
	"rpncalc/internal/driver"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] file...",
	Short: "Evaluate expression files in parallel",
	Long: `Batch evaluates files of infix expressions, one per line, with a
fresh calculator per file. Blank lines and lines starting with # are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	cfg, _, err := config.Load("")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := driver.EvalFiles(ctx, args, jobs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, fr := range results {
		if fr.Err != nil {
			failed++
			fmt.Fprintf(out, "%s: error: %v\n", fr.Path, fr.Err)
			continue
		}
		if !quiet {
			fmt.Fprintf(out, "%s:\n", fr.Path)
		}
		for _, lr := range fr.Lines {
			if lr.Err != nil {
				failed++
				fmt.Fprintf(out, "  %s => error: %v\n", lr.Line, lr.Err)
				continue
			}
			fmt.Fprintf(out, "  %s => %s\n", lr.Line, driver.FormatValue(lr.Value, cfg.Display.Precision))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d expression(s) failed", failed)
	}
	return nil
}

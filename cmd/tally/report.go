package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallyware/tally/internal/cli"
	"github.com/tallyware/tally/internal/model"
	"github.com/tallyware/tally/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute and display a budget report",
		Long: `Compute a budget report for one period: totals, per-budget
utilization, threshold alerts, savings tips, top spending categories,
and a rolling monthly trend.

Examples:
  # Report for the current month
  tally report --period month

  # Report for the current quarter as of a specific date
  tally report --period quarter --at 2024-02-15`,
		RunE: runReport,
	}

	cmd.Flags().StringP("period", "p", "month", "report period (week, month, quarter, year)")
	cmd.Flags().String("at", "", "reference date (YYYY-MM-DD, default: today)")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	periodFlag, _ := cmd.Flags().GetString("period")
	period, err := model.ParsePeriod(periodFlag)
	if err != nil {
		return err
	}

	now := time.Now()
	if atFlag, _ := cmd.Flags().GetString("at"); atFlag != "" {
		now, err = time.Parse("2006-01-02", atFlag)
		if err != nil {
			return fmt.Errorf("invalid --at date %q: %w", atFlag, err)
		}
	}

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	if err := store.Migrate(ctx); err != nil {
		return err
	}

	transactions, err := store.GetTransactions(ctx)
	if err != nil {
		return err
	}
	budgets, err := store.GetBudgets(ctx)
	if err != nil {
		return err
	}

	engine, err := report.New(reportConfig())
	if err != nil {
		return err
	}

	result, err := engine.Compute(transactions, budgets, period, now)
	if err != nil {
		return err
	}

	if result.SkippedCount > 0 {
		slog.Warn("some transactions were malformed and excluded",
			"skipped", result.SkippedCount)
	}

	cli.RenderReport(os.Stdout, result)
	return nil
}

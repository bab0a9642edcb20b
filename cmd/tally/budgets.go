package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tallyware/tally/internal/model"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage budgets",
		Long:  `List, add, and remove the budgets reports are computed against.`,
	}

	cmd.AddCommand(budgetsListCmd())
	cmd.AddCommand(budgetsAddCmd())
	cmd.AddCommand(budgetsRemoveCmd())

	return cmd
}

func budgetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			if err := store.Migrate(ctx); err != nil {
				return err
			}

			budgets, err := store.GetBudgets(ctx)
			if err != nil {
				return err
			}

			if len(budgets) == 0 {
				fmt.Println("No budgets defined. Add one with: tally budgets add")
				return nil
			}

			fmt.Printf("%-36s  %-20s  %-12s  %-8s  %12s\n", "ID", "NAME", "CATEGORY", "PERIOD", "AMOUNT")
			for _, b := range budgets {
				fmt.Printf("%-36s  %-20s  %-12s  %-8s  %12.2f\n", b.ID, b.Name, b.Category, b.Period, b.Amount)
			}
			return nil
		},
	}
}

func budgetsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a budget",
		Long: `Add a spending cap for one category within one period.

Example:
  tally budgets add --category food --amount 1000 --period month --name Groceries`,
		RunE: runBudgetsAdd,
	}

	cmd.Flags().String("category", "", "transaction category the budget tracks (required)")
	cmd.Flags().Float64("amount", 0, "spending cap per period instance (required)")
	cmd.Flags().String("period", "month", "budget period (week, month, quarter, year)")
	cmd.Flags().String("name", "", "display name (defaults to the category)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runBudgetsAdd(cmd *cobra.Command, _ []string) error {
	category, _ := cmd.Flags().GetString("category")
	amount, _ := cmd.Flags().GetFloat64("amount")
	periodFlag, _ := cmd.Flags().GetString("period")
	name, _ := cmd.Flags().GetString("name")

	period, err := model.ParsePeriod(periodFlag)
	if err != nil {
		return err
	}
	if name == "" {
		name = category
	}

	budget := &model.Budget{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Period:   period,
		Amount:   amount,
	}
	if err := budget.Validate(); err != nil {
		return err
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
	if err := store.SaveBudget(ctx, budget); err != nil {
		return err
	}

	fmt.Printf("Added budget %s: %s (%s, %.2f per %s)\n", budget.ID, budget.Name, budget.Category, budget.Amount, budget.Period)
	return nil
}

func budgetsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove a budget by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			if err := store.Migrate(ctx); err != nil {
				return err
			}
			if err := store.DeleteBudget(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("Removed budget %s\n", args[0])
			return nil
		},
	}
}

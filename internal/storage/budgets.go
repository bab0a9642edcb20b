package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tallyware/tally/internal/common"
	"github.com/tallyware/tally/internal/model"
)

// SaveBudget inserts or replaces a budget.
func (s *SQLiteStorage) SaveBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, name, category, period, amount)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			period = excluded.period,
			amount = excluded.amount`,
		budget.ID, budget.Name, budget.Category, string(budget.Period), budget.Amount)
	if err != nil {
		return fmt.Errorf("failed to save budget %s: %w", budget.ID, err)
	}

	slog.Debug("saved budget", "id", budget.ID, "category", budget.Category, "period", budget.Period)
	return nil
}

// GetBudgets returns all budgets ordered by ID.
func (s *SQLiteStorage) GetBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, period, amount, created_at
		FROM budgets
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		var period string
		if err := rows.Scan(&b.ID, &b.Name, &b.Category, &period, &b.Amount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		b.Period = model.Period(period)
		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	return budgets, nil
}

// GetBudgetByID returns one budget, or common.ErrNotFound.
func (s *SQLiteStorage) GetBudgetByID(ctx context.Context, id string) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var b model.Budget
	var period string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, category, period, amount, created_at
		FROM budgets
		WHERE id = ?`, id).Scan(&b.ID, &b.Name, &b.Category, &period, &b.Amount, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("budget %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query budget %s: %w", id, err)
	}

	b.Period = model.Period(period)
	return &b, nil
}

// DeleteBudget removes a budget by ID, or returns common.ErrNotFound.
func (s *SQLiteStorage) DeleteBudget(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, "DELETE FROM budgets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("budget %s: %w", id, common.ErrNotFound)
	}

	slog.Debug("deleted budget", "id", id)
	return nil
}

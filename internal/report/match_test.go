package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyware/tally/internal/model"
)

func TestMatchBudgets(t *testing.T) {
	budgets := []model.Budget{
		{ID: "b-2", Name: "Software", Category: "software", Period: model.PeriodMonth, Amount: 500},
		{ID: "b-1", Name: "Groceries", Category: "food", Period: model.PeriodMonth, Amount: 1000},
		{ID: "b-3", Name: "Weekly coffee", Category: "coffee", Period: model.PeriodWeek, Amount: 50},
	}
	byCategory := map[string]float64{"food": 1100, "software": 250}

	got := matchBudgets(budgets, byCategory, model.PeriodMonth)

	// Weekly budget excluded; output sorted by ID.
	require.Len(t, got, 2)
	assert.Equal(t, "b-1", got[0].BudgetID)
	assert.Equal(t, "b-2", got[1].BudgetID)

	assert.Equal(t, 1100.0, got[0].SpentAmount)
	assert.Equal(t, -100.0, got[0].RemainingAmount)
	assert.Equal(t, 110, got[0].PercentUsed)

	assert.Equal(t, 250.0, got[1].SpentAmount)
	assert.Equal(t, 250.0, got[1].RemainingAmount)
	assert.Equal(t, 50, got[1].PercentUsed)
}

func TestMatchBudgets_NoSpendDefaultsToZero(t *testing.T) {
	budgets := []model.Budget{
		{ID: "b-1", Name: "Travel", Category: "travel", Period: model.PeriodMonth, Amount: 400},
	}

	got := matchBudgets(budgets, map[string]float64{}, model.PeriodMonth)

	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].SpentAmount)
	assert.Equal(t, 400.0, got[0].RemainingAmount)
	assert.Equal(t, 0, got[0].PercentUsed)
}

func TestMatchBudgets_ZeroBudgetAmountIsSafe(t *testing.T) {
	// A zero cap can't normally be created through Validate, but the
	// matcher must still guard the division.
	budgets := []model.Budget{
		{ID: "b-1", Name: "Broken", Category: "food", Period: model.PeriodMonth, Amount: 0},
	}

	got := matchBudgets(budgets, map[string]float64{"food": 500}, model.PeriodMonth)

	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].PercentUsed)
}

func TestMatchBudgets_ColorsAreStableAcrossCalls(t *testing.T) {
	// Same budgets in different insertion order must get the same colors,
	// since assignment follows the sorted-by-ID position.
	budgets := []model.Budget{
		{ID: "b-1", Name: "A", Category: "a", Period: model.PeriodMonth, Amount: 10},
		{ID: "b-2", Name: "B", Category: "b", Period: model.PeriodMonth, Amount: 10},
	}
	reversed := []model.Budget{budgets[1], budgets[0]}

	first := matchBudgets(budgets, map[string]float64{}, model.PeriodMonth)
	second := matchBudgets(reversed, map[string]float64{}, model.PeriodMonth)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, first[0].Color, second[0].Color)
	assert.Equal(t, first[1].Color, second[1].Color)
	assert.NotEqual(t, first[0].Color, first[1].Color)
}

func TestMatchBudgets_PercentRoundsHalfUp(t *testing.T) {
	budgets := []model.Budget{
		{ID: "b-1", Name: "Food", Category: "food", Period: model.PeriodMonth, Amount: 200},
	}

	// 161/200 = 80.5% which rounds up to 81.
	got := matchBudgets(budgets, map[string]float64{"food": 161}, model.PeriodMonth)

	require.Len(t, got, 1)
	assert.Equal(t, 81, got[0].PercentUsed)
}

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyware/tally/internal/model"
)

func utilization(name string, spent, budget float64) model.Utilization {
	return model.Utilization{
		BudgetID:     "b-" + name,
		Name:         name,
		BudgetAmount: budget,
		SpentAmount:  spent,
		PercentUsed:  roundHalfUp(percentOf(spent, budget)),
	}
}

func TestGenerateAlerts_ThresholdBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name         string
		spent        float64
		budget       float64
		wantSeverity model.Severity
		wantAlert    bool
	}{
		{name: "exactly at warn threshold stays quiet", spent: 80, budget: 100, wantAlert: false},
		{name: "just over warn threshold", spent: 80.01, budget: 100, wantAlert: true, wantSeverity: model.SeverityMedium},
		{name: "exactly at critical threshold is still medium", spent: 95, budget: 100, wantAlert: true, wantSeverity: model.SeverityMedium},
		{name: "just over critical threshold", spent: 95.01, budget: 100, wantAlert: true, wantSeverity: model.SeverityHigh},
		{name: "well under budget", spent: 10, budget: 100, wantAlert: false},
		{name: "overspent", spent: 110, budget: 100, wantAlert: true, wantSeverity: model.SeverityHigh},
		{name: "zero budget amount never alerts or panics", spent: 500, budget: 0, wantAlert: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := generateAlerts([]model.Utilization{utilization("food", tt.spent, tt.budget)}, cfg)
			if !tt.wantAlert {
				assert.Empty(t, alerts)
				return
			}
			require.Len(t, alerts, 1)
			assert.Equal(t, tt.wantSeverity, alerts[0].Severity)
			assert.Equal(t, "food", alerts[0].SubjectName)
		})
	}
}

func TestGenerateAlerts_Messages(t *testing.T) {
	cfg := DefaultConfig()

	alerts := generateAlerts([]model.Utilization{
		utilization("food", 1100, 1000),
		utilization("software", 90, 100),
	}, cfg)

	require.Len(t, alerts, 2)
	assert.Equal(t, "food has exceeded budget (110% used)", alerts[0].Message)
	assert.Equal(t, 110, alerts[0].PercentUsed)
	assert.Equal(t, "software is approaching budget limit (90% used)", alerts[1].Message)
}

func TestGenerateAlerts_KeepsUtilizationOrder(t *testing.T) {
	cfg := DefaultConfig()

	// A medium alert listed before a high one must stay first: alerts
	// follow utilization order, not severity.
	alerts := generateAlerts([]model.Utilization{
		utilization("software", 90, 100),
		utilization("food", 200, 100),
	}, cfg)

	require.Len(t, alerts, 2)
	assert.Equal(t, model.SeverityMedium, alerts[0].Severity)
	assert.Equal(t, model.SeverityHigh, alerts[1].Severity)
}

func TestGenerateAlerts_CustomThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WarnThresholdPct = 50
	cfg.CritThresholdPct = 70

	alerts := generateAlerts([]model.Utilization{utilization("food", 60, 100)}, cfg)

	require.Len(t, alerts, 1)
	assert.Equal(t, model.SeverityMedium, alerts[0].Severity)
}

func tipExpense(id, desc string, amount float64, date time.Time) model.Transaction {
	return model.Transaction{
		ID:          id,
		Type:        model.TypeExpense,
		Description: desc,
		Amount:      amount,
		Date:        date,
	}
}

func TestSavingsTips(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()

	txns := []model.Transaction{
		tipExpense("c1", "Blue Bottle Coffee", 60, now.AddDate(0, 0, -5)),
		tipExpense("c2", "CORNER CAFE", 70, now.AddDate(0, 0, -10)),
		tipExpense("r1", "Thai Restaurant", 80, now.AddDate(0, 0, -3)),
		// Below the minimum on its own.
		tipExpense("m1", "Cinema ticket", 20, now.AddDate(0, 0, -1)),
		// Outside the lookback window.
		tipExpense("c3", "Coffee beans", 500, now.AddDate(0, 0, -45)),
		// Income never counts.
		{ID: "i1", Type: model.TypeIncome, Description: "coffee shop refund", Amount: 900, Date: now},
	}

	tips := savingsTips(txns, now, cfg)

	require.Len(t, tips, 1)
	assert.Equal(t, model.SeverityTip, tips[0].Severity)
	assert.Equal(t, "coffee", tips[0].SubjectName)
	assert.Contains(t, tips[0].Message, "130.00")
	assert.Contains(t, tips[0].Message, "coffee")
}

func TestSavingsTips_FiresWithoutAnyBudget(t *testing.T) {
	// Tips are independent of budgets entirely; the scan only needs
	// transactions.
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tips := savingsTips([]model.Transaction{
		tipExpense("c1", "espresso bar", 150, now.AddDate(0, 0, -2)),
	}, now, DefaultConfig())

	require.Len(t, tips, 1)
	assert.Equal(t, "coffee", tips[0].SubjectName)
}

func TestSavingsTips_RankedAndCapped(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()
	cfg.MaxSuggestions = 2

	txns := []model.Transaction{
		tipExpense("a", "coffee shop", 150, now.AddDate(0, 0, -1)),
		tipExpense("b", "snack attack chips", 400, now.AddDate(0, 0, -1)),
		tipExpense("c", "dinner restaurant", 300, now.AddDate(0, 0, -1)),
	}

	tips := savingsTips(txns, now, cfg)

	require.Len(t, tips, 2)
	assert.Equal(t, "snacks", tips[0].SubjectName)
	assert.Equal(t, "dining out", tips[1].SubjectName)
}

func TestSavingsTips_MinimumIsConfigurable(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()
	cfg.MinSavingsAmount = 10

	tips := savingsTips([]model.Transaction{
		tipExpense("a", "latte", 12, now),
	}, now, cfg)

	require.Len(t, tips, 1)
}

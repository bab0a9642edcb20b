package report

import (
	"time"

	"github.com/tallyware/tally/internal/model"
)

// Engine derives budget reports from raw transactions and budgets.
// It holds configuration only; there is no shared mutable state, so a
// single Engine is safe for concurrent use.
type Engine struct {
	cfg Config
}

// New creates an engine after validating its configuration.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Compute builds the full report for one period at the given reference
// time: totals, per-budget utilization, alerts and savings tips, top
// category and department breakdowns, and the rolling trend series.
//
// Empty inputs are not an error; they yield a report with zero totals
// and empty lists. Malformed transactions are skipped and counted, not
// fatal. Only an unknown period aborts the call.
func (e *Engine) Compute(txns []model.Transaction, budgets []model.Budget, period model.Period, now time.Time) (*model.BudgetReport, error) {
	rng, err := ResolvePeriod(period, now)
	if err != nil {
		return nil, err
	}

	valid, skipped := sanitize(txns)
	inRange := filterByRange(valid, rng)
	agg := aggregate(inRange)

	utilizations := matchBudgets(budgets, agg.byCategory, period)

	var totalBudget float64
	for _, u := range utilizations {
		totalBudget += u.BudgetAmount
	}

	alerts := generateAlerts(utilizations, e.cfg)
	alerts = append(alerts, savingsTips(valid, now, e.cfg)...)

	return &model.BudgetReport{
		Period:         period,
		Range:          rng,
		TotalBudget:    totalBudget,
		TotalSpent:     agg.expense,
		TotalRemaining: totalBudget - agg.expense,
		Utilizations:   utilizations,
		Alerts:         alerts,
		TopCategories:  breakdown(agg.byCategory, agg.categoryOrder, e.cfg.TopCategoryLimit),
		TopDepartments: breakdown(agg.byDepartment, agg.departmentOrder, e.cfg.TopCategoryLimit),
		Trend:          trendSeries(valid, now, e.cfg.TrendMonths),
		SkippedCount:   skipped,
	}, nil
}

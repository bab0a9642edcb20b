package report

import (
	"sort"

	"github.com/tallyware/tally/internal/model"
)

// categoryPalette is the fixed set of colors assigned to utilizations.
// Assignment is by position in the sorted-by-ID budget list, so the same
// budget gets the same color on every recomputation.
var categoryPalette = []string{
	"#FF6B6B", // red
	"#4ECDC4", // teal
	"#FFE66D", // yellow
	"#95E1D3", // mint
	"#A78BFA", // violet
	"#F4A261", // orange
	"#6C9BCF", // blue
	"#E76F51", // coral
}

// matchBudgets pairs every budget scoped to the active period with its
// aggregated category spend. Budgets scoped to other granularities are
// excluded entirely: a weekly budget must not inflate a monthly report.
func matchBudgets(budgets []model.Budget, byCategory map[string]float64, period model.Period) []model.Utilization {
	scoped := make([]model.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.Period == period {
			scoped = append(scoped, b)
		}
	}
	sort.Slice(scoped, func(i, j int) bool { return scoped[i].ID < scoped[j].ID })

	utilizations := make([]model.Utilization, 0, len(scoped))
	for i, b := range scoped {
		spent := byCategory[b.Category]
		utilizations = append(utilizations, model.Utilization{
			BudgetID:        b.ID,
			Name:            b.Name,
			Category:        b.Category,
			Color:           categoryPalette[i%len(categoryPalette)],
			BudgetAmount:    b.Amount,
			SpentAmount:     spent,
			RemainingAmount: b.Amount - spent,
			PercentUsed:     roundHalfUp(percentOf(spent, b.Amount)),
		})
	}

	return utilizations
}

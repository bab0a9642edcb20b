package report

import (
	"time"

	"github.com/tallyware/tally/internal/model"
)

// totals holds the sums for one set of transactions. Category and
// department grouping covers expense rows only; income is summed
// separately and never grouped. Keys are exact, case-sensitive strings.
type totals struct {
	byCategory      map[string]float64
	byDepartment    map[string]float64
	categoryOrder   []string
	departmentOrder []string
	income          float64
	expense         float64
}

// aggregate sums the given transactions. First-seen order of grouping
// keys is recorded so downstream rankings break ties deterministically.
func aggregate(txns []model.Transaction) totals {
	agg := totals{
		byCategory:   make(map[string]float64),
		byDepartment: make(map[string]float64),
	}

	for _, txn := range txns {
		switch txn.Type {
		case model.TypeIncome:
			agg.income += txn.Amount
		case model.TypeExpense:
			agg.expense += txn.Amount
			if _, seen := agg.byCategory[txn.Category]; !seen {
				agg.categoryOrder = append(agg.categoryOrder, txn.Category)
			}
			agg.byCategory[txn.Category] += txn.Amount
			if _, seen := agg.byDepartment[txn.Department]; !seen {
				agg.departmentOrder = append(agg.departmentOrder, txn.Department)
			}
			agg.byDepartment[txn.Department] += txn.Amount
		}
	}

	return agg
}

// trendSeries recomputes the aggregate per calendar month for a rolling
// window ending at now's month, oldest first. The window always walks
// calendar months even when the report itself covers a week, quarter or
// year; changing that would change displayed numbers.
func trendSeries(txns []model.Transaction, now time.Time, months int) []model.TrendPoint {
	points := make([]model.TrendPoint, 0, months)
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for i := months - 1; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, -1)
		agg := aggregate(filterByRange(txns, model.PeriodRange{Start: start, End: end}))
		points = append(points, model.TrendPoint{
			Label:   start.Format("Jan 2006"),
			Income:  agg.income,
			Expense: agg.expense,
			Net:     agg.income - agg.expense,
		})
	}

	return points
}

// breakdown converts grouped sums into a ranked, capped list. Percentage
// is each key's share of the group total, rounded half-up, and zero when
// the total itself is zero.
func breakdown(sums map[string]float64, order []string, limit int) []model.CategoryTotal {
	var total float64
	for _, amount := range sums {
		total += amount
	}

	entries := make([]model.CategoryTotal, 0, len(order))
	for _, name := range order {
		entries = append(entries, model.CategoryTotal{
			Name:       name,
			Amount:     sums[name],
			Percentage: roundHalfUp(percentOf(sums[name], total)),
		})
	}

	return topN(entries, limit, func(c model.CategoryTotal) float64 { return c.Amount })
}

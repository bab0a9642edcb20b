package report

import (
	"math"

	"github.com/tallyware/tally/internal/model"
)

// sanitize normalizes grouping keys and drops malformed transactions:
// no usable date, a non-finite or negative amount, or an unknown type.
// The count of dropped records is surfaced on the report so one bad
// row can never silently blank a whole screen.
func sanitize(txns []model.Transaction) ([]model.Transaction, int) {
	valid := make([]model.Transaction, 0, len(txns))
	skipped := 0

	for _, txn := range txns {
		txn.Normalize()
		if malformed(txn) {
			skipped++
			continue
		}
		valid = append(valid, txn)
	}

	return valid, skipped
}

func malformed(txn model.Transaction) bool {
	if txn.Date.IsZero() {
		return true
	}
	if math.IsNaN(txn.Amount) || math.IsInf(txn.Amount, 0) || txn.Amount < 0 {
		return true
	}
	if txn.Type != model.TypeIncome && txn.Type != model.TypeExpense {
		return true
	}
	return false
}

// filterByRange keeps transactions whose date falls inside the range,
// inclusive on both ends.
func filterByRange(txns []model.Transaction, r model.PeriodRange) []model.Transaction {
	kept := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if r.Contains(txn.Date) {
			kept = append(kept, txn)
		}
	}
	return kept
}

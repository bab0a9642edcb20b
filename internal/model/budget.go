package model

import (
	"fmt"
	"math"
	"time"
)

// Budget is a user-defined spending cap for one category within one
// instance of a period. Budgets are created and retired by the caller;
// the reporting engine only ever reads them.
type Budget struct {
	CreatedAt time.Time
	ID        string
	Name      string // Display label
	Category  string // Matches Transaction.Category exactly
	Period    Period
	Amount    float64 // Cap for the category within one period instance
}

// Validate ensures the budget is safe to persist and match against.
func (b *Budget) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("budget ID is required")
	}
	if b.Category == "" {
		return fmt.Errorf("budget category is required")
	}
	if _, err := ParsePeriod(string(b.Period)); err != nil {
		return err
	}
	if math.IsNaN(b.Amount) || math.IsInf(b.Amount, 0) {
		return fmt.Errorf("budget amount must be a finite number")
	}
	if b.Amount <= 0 {
		return fmt.Errorf("budget amount must be positive, got %.2f", b.Amount)
	}
	return nil
}

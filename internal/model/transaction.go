// Package model defines the domain types shared across the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"math"
	"time"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// TypeIncome represents money received.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money spent.
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType converts a raw string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeIncome, TypeExpense:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Default keys used when a transaction arrives without a grouping key.
// Downstream grouping relies on these never being empty.
const (
	DefaultCategory   = "other"
	DefaultDepartment = "General"
)

// Transaction represents a single financial transaction from any source.
// The reporting engine treats transactions as read-only input.
type Transaction struct {
	Date        time.Time
	CreatedAt   time.Time
	ID          string
	Description string // Raw transaction description
	Category    string // Grouping key; exact, case-sensitive
	Department  string // Business variant grouping key
	AccountID   string
	Hash        string
	Type        TransactionType
	Amount      float64 // Currency-agnostic, always >= 0
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Description,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// Normalize fills defaults the aggregation layer depends on: empty
// grouping keys become the well-known defaults, and a zero Date falls
// back to CreatedAt when one is available.
func (t *Transaction) Normalize() {
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	if t.Department == "" {
		t.Department = DefaultDepartment
	}
	if t.Date.IsZero() && !t.CreatedAt.IsZero() {
		t.Date = t.CreatedAt
	}
}

// Validate ensures the transaction is safe to persist and aggregate.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return fmt.Errorf("transaction amount must be a finite number")
	}
	if t.Amount < 0 {
		return fmt.Errorf("transaction amount must be non-negative, got %.2f", t.Amount)
	}
	return nil
}

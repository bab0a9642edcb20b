package model

import (
	"math"
	"testing"
	"time"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		txn     Transaction
		wantErr bool
	}{
		{
			name: "valid expense",
			txn: Transaction{
				ID:     "txn-1",
				Type:   TypeExpense,
				Amount: 42.50,
			},
			wantErr: false,
		},
		{
			name: "valid income with zero amount",
			txn: Transaction{
				ID:     "txn-2",
				Type:   TypeIncome,
				Amount: 0,
			},
			wantErr: false,
		},
		{
			name: "missing ID",
			txn: Transaction{
				Type:   TypeExpense,
				Amount: 10,
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			txn: Transaction{
				ID:     "txn-3",
				Type:   "transfer",
				Amount: 10,
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			txn: Transaction{
				ID:     "txn-4",
				Type:   TypeExpense,
				Amount: -1,
			},
			wantErr: true,
		},
		{
			name: "NaN amount",
			txn: Transaction{
				ID:     "txn-5",
				Type:   TypeExpense,
				Amount: math.NaN(),
			},
			wantErr: true,
		},
		{
			name: "infinite amount",
			txn: Transaction{
				ID:     "txn-6",
				Type:   TypeExpense,
				Amount: math.Inf(1),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransaction_Normalize(t *testing.T) {
	created := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	txn := Transaction{ID: "txn-1", Type: TypeExpense, Amount: 5, CreatedAt: created}
	txn.Normalize()

	if txn.Category != DefaultCategory {
		t.Errorf("Category = %q, want %q", txn.Category, DefaultCategory)
	}
	if txn.Department != DefaultDepartment {
		t.Errorf("Department = %q, want %q", txn.Department, DefaultDepartment)
	}
	if !txn.Date.Equal(created) {
		t.Errorf("Date = %v, want fallback to CreatedAt %v", txn.Date, created)
	}
}

func TestTransaction_NormalizeKeepsExplicitValues(t *testing.T) {
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	txn := Transaction{
		ID:         "txn-1",
		Type:       TypeExpense,
		Amount:     5,
		Category:   "Food",
		Department: "Engineering",
		Date:       date,
	}
	txn.Normalize()

	if txn.Category != "Food" {
		t.Errorf("Category = %q, want unchanged %q", txn.Category, "Food")
	}
	if txn.Department != "Engineering" {
		t.Errorf("Department = %q, want unchanged %q", txn.Department, "Engineering")
	}
	if !txn.Date.Equal(date) {
		t.Errorf("Date = %v, want unchanged %v", txn.Date, date)
	}
}

func TestTransaction_GenerateHash(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	a := Transaction{Date: date, Amount: 10.50, Description: "Coffee Shop", AccountID: "acct-1"}
	b := Transaction{Date: date, Amount: 10.50, Description: "Coffee Shop", AccountID: "acct-1"}
	c := Transaction{Date: date, Amount: 10.51, Description: "Coffee Shop", AccountID: "acct-1"}

	if a.GenerateHash() != b.GenerateHash() {
		t.Error("identical transactions should hash identically")
	}
	if a.GenerateHash() == c.GenerateHash() {
		t.Error("different amounts should hash differently")
	}
}

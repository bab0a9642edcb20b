// Package service defines the contracts between the CLI layer and its
// collaborators. The reporting engine itself never touches storage; it
// receives already-loaded slices from callers of these interfaces.
package service

import (
	"context"
	"time"

	"github.com/tallyware/tally/internal/model"
)

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) (int, error)
	GetTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransactionsByRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error)
	CountTransactions(ctx context.Context) (int, error)

	// Budget operations
	SaveBudget(ctx context.Context, budget *model.Budget) error
	GetBudgets(ctx context.Context) ([]model.Budget, error)
	GetBudgetByID(ctx context.Context, id string) (*model.Budget, error)
	DeleteBudget(ctx context.Context, id string) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Package csv reads transaction exports in CSV form. The column set is
// header-driven so exports from different tools map onto the same model.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tallyware/tally/internal/model"
)

// ErrMissingColumn indicates the CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	time.RFC3339,
}

// requiredColumns must all be present in the header.
var requiredColumns = []string{"date", "description", "type", "amount"}

// Result carries the parsed rows plus a count of rows that could not be
// parsed. Bad rows are skipped, never fatal.
type Result struct {
	Transactions []model.Transaction
	Skipped      int
}

// Read parses a CSV transaction export. Expected columns (by header
// name, case-insensitive): date, description, type, amount, and
// optionally id, category, department, account_id.
func Read(_ context.Context, r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Result{Transactions: []model.Transaction{}}, nil
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	result := &Result{Transactions: []model.Transaction{}}
	line := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			slog.Warn("skipping unreadable CSV row", "line", line, "error", err)
			result.Skipped++
			continue
		}

		txn, err := parseRow(record, colIndex)
		if err != nil {
			slog.Warn("skipping malformed CSV row", "line", line, "error", err)
			result.Skipped++
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}

	slog.Info("parsed CSV file", "transactions", len(result.Transactions), "skipped", result.Skipped)
	return result, nil
}

func parseRow(record []string, colIndex map[string]int) (model.Transaction, error) {
	field := func(name string) string {
		idx, ok := colIndex[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	date, err := parseDate(field("date"))
	if err != nil {
		return model.Transaction{}, err
	}

	txnType, err := model.ParseTransactionType(strings.ToLower(field("type")))
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := strconv.ParseFloat(field("amount"), 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount %q: %w", field("amount"), err)
	}
	if amount < 0 {
		return model.Transaction{}, fmt.Errorf("negative amount %.2f", amount)
	}

	id := field("id")
	if id == "" {
		id = uuid.NewString()
	}

	txn := model.Transaction{
		ID:          id,
		Date:        date,
		Description: field("description"),
		Type:        txnType,
		Amount:      amount,
		Category:    field("category"),
		Department:  field("department"),
		AccountID:   field("account_id"),
	}
	txn.Normalize()
	txn.Hash = txn.GenerateHash()

	return txn, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// Package report implements the budget aggregation and alerting engine.
// It is pure and synchronous: all inputs (transactions, budgets, the
// reference time) are passed in and every output is freshly constructed,
// so identical inputs always produce identical reports.
package report

import (
	"fmt"

	"github.com/tallyware/tally/internal/common"
)

// KeywordGroup names one non-essential spending topic and the substrings
// that identify it in transaction descriptions. Groups are ordered so
// tie-breaking between equally sized topics stays deterministic.
type KeywordGroup struct {
	Topic    string
	Keywords []string
}

// Config carries every tunable the engine honors. Nothing in the alert
// or ranking code paths reads a literal threshold; it all flows from here.
type Config struct {
	// WarnThresholdPct is the exact utilization percentage above which a
	// medium alert fires. A utilization at exactly this value stays quiet.
	WarnThresholdPct float64
	// CritThresholdPct is the exact utilization percentage above which a
	// high alert fires instead of a medium one.
	CritThresholdPct float64
	// NonEssentialKeywords is the taxonomy scanned against raw expense
	// descriptions for savings tips.
	NonEssentialKeywords []KeywordGroup
	// MinSavingsAmount is the smallest matched sum that produces a tip.
	MinSavingsAmount float64
	// LookbackDays bounds the tip scan window, counted back from now.
	LookbackDays int
	// MaxSuggestions caps how many tips a single report carries.
	MaxSuggestions int
	// TopCategoryLimit caps the top-spending-categories breakdown.
	TopCategoryLimit int
	// TrendMonths is the length of the rolling trend window. The trend
	// always walks calendar months regardless of the report period.
	TrendMonths int
}

// DefaultConfig returns the stock engine tuning.
func DefaultConfig() Config {
	return Config{
		WarnThresholdPct: 80,
		CritThresholdPct: 95,
		NonEssentialKeywords: []KeywordGroup{
			{Topic: "coffee", Keywords: []string{"coffee", "cafe", "espresso", "latte"}},
			{Topic: "cold drinks", Keywords: []string{"soda", "cold drink", "juice", "smoothie"}},
			{Topic: "snacks", Keywords: []string{"snack", "chips", "candy"}},
			{Topic: "dining out", Keywords: []string{"restaurant", "dining", "takeout", "pizza"}},
			{Topic: "entertainment", Keywords: []string{"movie", "cinema", "streaming", "entertainment"}},
		},
		MinSavingsAmount: 100,
		LookbackDays:     30,
		MaxSuggestions:   3,
		TopCategoryLimit: 5,
		TrendMonths:      3,
	}
}

// Validate ensures the configuration is internally consistent.
func (c Config) Validate() error {
	if c.WarnThresholdPct < 0 {
		return fmt.Errorf("%w: warn threshold must be non-negative, got %.2f", common.ErrInvalidConfig, c.WarnThresholdPct)
	}
	if c.CritThresholdPct <= c.WarnThresholdPct {
		return fmt.Errorf("%w: critical threshold %.2f must exceed warn threshold %.2f",
			common.ErrInvalidConfig, c.CritThresholdPct, c.WarnThresholdPct)
	}
	if c.MinSavingsAmount < 0 {
		return fmt.Errorf("%w: minimum savings amount must be non-negative", common.ErrInvalidConfig)
	}
	if c.LookbackDays <= 0 {
		return fmt.Errorf("%w: lookback days must be positive, got %d", common.ErrInvalidConfig, c.LookbackDays)
	}
	if c.MaxSuggestions < 0 {
		return fmt.Errorf("%w: max suggestions must be non-negative, got %d", common.ErrInvalidConfig, c.MaxSuggestions)
	}
	if c.TopCategoryLimit <= 0 {
		return fmt.Errorf("%w: top category limit must be positive, got %d", common.ErrInvalidConfig, c.TopCategoryLimit)
	}
	if c.TrendMonths <= 0 {
		return fmt.Errorf("%w: trend months must be positive, got %d", common.ErrInvalidConfig, c.TrendMonths)
	}
	for _, group := range c.NonEssentialKeywords {
		if group.Topic == "" {
			return fmt.Errorf("%w: keyword group with empty topic", common.ErrInvalidConfig)
		}
	}
	return nil
}

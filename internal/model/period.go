package model

import (
	"fmt"
	"strings"
)

// Period is the granularity a budget or report is scoped to.
type Period string

const (
	// PeriodWeek covers Sunday through Saturday of the current week.
	PeriodWeek Period = "Week"
	// PeriodMonth covers the current calendar month.
	PeriodMonth Period = "Month"
	// PeriodQuarter covers the current calendar quarter.
	PeriodQuarter Period = "Quarter"
	// PeriodYear covers the current calendar year.
	PeriodYear Period = "Year"
)

// Periods lists all valid period granularities.
func Periods() []Period {
	return []Period{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear}
}

// ParsePeriod converts a raw string into a Period. Input is matched
// case-insensitively but the canonical values are fixed. Unknown names
// are an error; there is deliberately no fallback granularity.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week":
		return PeriodWeek, nil
	case "month":
		return PeriodMonth, nil
	case "quarter":
		return PeriodQuarter, nil
	case "year":
		return PeriodYear, nil
	default:
		names := make([]string, len(Periods()))
		for i, p := range Periods() {
			names[i] = strings.ToLower(string(p))
		}
		return "", fmt.Errorf("unknown period %q (valid: %s)", s, strings.Join(names, ", "))
	}
}

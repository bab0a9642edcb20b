package model

import "time"

// PeriodRange is the inclusive calendar span a report covers.
type PeriodRange struct {
	Start         time.Time
	End           time.Time
	DaysRemaining int
}

// Contains reports whether the given date falls inside the range,
// inclusive on both ends, compared at day granularity.
func (r PeriodRange) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Severity classifies how urgent an alert is.
type Severity string

const (
	// SeverityLow marks informational alerts.
	SeverityLow Severity = "low"
	// SeverityMedium marks budgets approaching their limit.
	SeverityMedium Severity = "medium"
	// SeverityHigh marks budgets that have exceeded their limit.
	SeverityHigh Severity = "high"
	// SeverityTip marks savings recommendations independent of budgets.
	SeverityTip Severity = "tip"
)

// Utilization pairs one budget with its aggregated spend for the
// active period. Derived fresh on every report; never persisted.
type Utilization struct {
	BudgetID        string
	Name            string
	Category        string
	Color           string // Deterministic palette color, stable across calls
	BudgetAmount    float64
	SpentAmount     float64
	RemainingAmount float64 // May be negative when overspent
	PercentUsed     int     // Rounded half-up; 0 when BudgetAmount is 0
}

// Alert is a threshold crossing or savings recommendation derived from
// a report. The caller owns display and dismissal state.
type Alert struct {
	ID          string
	SubjectName string
	Message     string
	Severity    Severity
	PercentUsed int
}

// CategoryTotal is one entry in the top-spending-categories breakdown.
type CategoryTotal struct {
	Name       string
	Amount     float64
	Percentage int // Share of total spend, rounded half-up; 0 when total is 0
}

// TrendPoint is one period instance in the rolling trend series.
type TrendPoint struct {
	Label   string
	Income  float64
	Expense float64
	Net     float64
}

// BudgetReport is the engine's output contract. Every field is
// recomputed from scratch per call; identical inputs produce
// identical reports.
type BudgetReport struct {
	Period         Period
	Range          PeriodRange
	TotalBudget    float64
	TotalSpent     float64
	TotalRemaining float64
	Utilizations   []Utilization
	Alerts         []Alert
	TopCategories  []CategoryTotal
	TopDepartments []CategoryTotal
	Trend          []TrendPoint
	SkippedCount   int // Malformed transactions excluded from the report
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/tallyware/tally/internal/model"
)

// RenderReport writes a styled budget report to the given writer.
func RenderReport(w io.Writer, report *model.BudgetReport) {
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("Budget report — %s (%s to %s)",
		report.Period,
		report.Range.Start.Format("2006-01-02"),
		report.Range.End.Format("2006-01-02"))))

	fmt.Fprintf(w, "%s %s\n", BoldStyle.Render("Total budget:"), formatAmount(report.TotalBudget))
	fmt.Fprintf(w, "%s  %s\n", BoldStyle.Render("Total spent:"), formatAmount(report.TotalSpent))
	fmt.Fprintf(w, "%s %s\n", BoldStyle.Render("Remaining:  "), formatAmount(report.TotalRemaining))
	fmt.Fprintf(w, "%s %d\n\n", SubtleStyle.Render("Days left in period:"), report.Range.DaysRemaining)

	if len(report.Utilizations) > 0 {
		severities := make(map[string]model.Severity, len(report.Alerts))
		for _, a := range report.Alerts {
			severities[a.ID] = a.Severity
		}
		fmt.Fprintln(w, BoldStyle.Render("Budgets"))
		for _, u := range report.Utilizations {
			fmt.Fprintln(w, utilizationLine(u, severities["budget-"+u.BudgetID]))
		}
		fmt.Fprintln(w)
	}

	if len(report.Alerts) > 0 {
		fmt.Fprintln(w, BoldStyle.Render("Alerts"))
		for _, a := range report.Alerts {
			fmt.Fprintln(w, alertLine(a))
		}
		fmt.Fprintln(w)
	}

	if len(report.TopCategories) > 0 {
		fmt.Fprintln(w, BoldStyle.Render("Top spending categories"))
		for _, c := range report.TopCategories {
			fmt.Fprintf(w, "  %-20s %12s  %3d%%\n", c.Name, formatAmount(c.Amount), c.Percentage)
		}
		fmt.Fprintln(w)
	}

	if len(report.TopDepartments) > 0 {
		fmt.Fprintln(w, BoldStyle.Render("Top departments"))
		for _, d := range report.TopDepartments {
			fmt.Fprintf(w, "  %-20s %12s  %3d%%\n", d.Name, formatAmount(d.Amount), d.Percentage)
		}
		fmt.Fprintln(w)
	}

	if len(report.Trend) > 0 {
		fmt.Fprintln(w, BoldStyle.Render("Trend"))
		for _, p := range report.Trend {
			fmt.Fprintf(w, "  %-10s in %12s  out %12s  net %12s\n",
				p.Label, formatAmount(p.Income), formatAmount(p.Expense), formatAmount(p.Net))
		}
		fmt.Fprintln(w)
	}

	if report.SkippedCount > 0 {
		fmt.Fprintln(w, WarningStyle.Render(
			fmt.Sprintf("%d malformed transaction(s) were excluded from this report", report.SkippedCount)))
	}
}

func utilizationLine(u model.Utilization, severity model.Severity) string {
	line := fmt.Sprintf("  %-20s %12s of %12s  %3d%%  %s",
		u.Name, formatAmount(u.SpentAmount), formatAmount(u.BudgetAmount), u.PercentUsed, bar(u.PercentUsed))
	switch severity {
	case model.SeverityHigh:
		return ErrorStyle.Render(line)
	case model.SeverityMedium:
		return WarningStyle.Render(line)
	default:
		return SuccessStyle.Render(line)
	}
}

func alertLine(a model.Alert) string {
	switch a.Severity {
	case model.SeverityHigh:
		return ErrorStyle.Render("  ✗ " + a.Message)
	case model.SeverityMedium:
		return WarningStyle.Render("  ! " + a.Message)
	case model.SeverityTip:
		return TipStyle.Render("  → " + a.Message)
	default:
		return SubtleStyle.Render("  · " + a.Message)
	}
}

// bar renders a ten-cell utilization gauge, clamped at full.
func bar(percent int) string {
	filled := percent / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

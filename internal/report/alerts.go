package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/tallyware/tally/internal/model"
)

// generateAlerts scans utilization records against the configured
// thresholds. The decision uses the exact percentage, not the rounded
// display value, so a budget at exactly the warn threshold stays quiet
// while one a fraction over it does not. Alerts come out in utilization
// order; the caller owns any re-sorting and all dismissal state.
func generateAlerts(utilizations []model.Utilization, cfg Config) []model.Alert {
	alerts := make([]model.Alert, 0)

	for _, u := range utilizations {
		exact := percentOf(u.SpentAmount, u.BudgetAmount)

		switch {
		case exact > cfg.CritThresholdPct:
			alerts = append(alerts, model.Alert{
				ID:          "budget-" + u.BudgetID,
				Severity:    model.SeverityHigh,
				SubjectName: u.Name,
				Message:     fmt.Sprintf("%s has exceeded budget (%d%% used)", u.Name, u.PercentUsed),
				PercentUsed: u.PercentUsed,
			})
		case exact > cfg.WarnThresholdPct:
			alerts = append(alerts, model.Alert{
				ID:          "budget-" + u.BudgetID,
				Severity:    model.SeverityMedium,
				SubjectName: u.Name,
				Message:     fmt.Sprintf("%s is approaching budget limit (%d%% used)", u.Name, u.PercentUsed),
				PercentUsed: u.PercentUsed,
			})
		}
	}

	return alerts
}

// savingsTips scans raw expense descriptions against the non-essential
// keyword taxonomy over the lookback window. A topic whose matched sum
// reaches the configured minimum produces a tip, independent of whether
// any budget exists for it. Tips are ranked by matched amount and
// capped; ties keep taxonomy order.
func savingsTips(txns []model.Transaction, now time.Time, cfg Config) []model.Alert {
	cutoff := now.AddDate(0, 0, -cfg.LookbackDays)

	sums := make([]float64, len(cfg.NonEssentialKeywords))
	for _, txn := range txns {
		if txn.Type != model.TypeExpense {
			continue
		}
		if txn.Date.Before(cutoff) || txn.Date.After(now) {
			continue
		}
		desc := strings.ToLower(txn.Description)
		for i, group := range cfg.NonEssentialKeywords {
			if matchesAny(desc, group.Keywords) {
				// First matching topic wins so one purchase is never
				// counted toward two suggestions.
				sums[i] += txn.Amount
				break
			}
		}
	}

	candidates := make([]model.Alert, 0, len(cfg.NonEssentialKeywords))
	amounts := make(map[string]float64, len(cfg.NonEssentialKeywords))
	for i, group := range cfg.NonEssentialKeywords {
		if sums[i] < cfg.MinSavingsAmount {
			continue
		}
		candidates = append(candidates, model.Alert{
			ID:          "tip-" + strings.ReplaceAll(group.Topic, " ", "-"),
			Severity:    model.SeverityTip,
			SubjectName: group.Topic,
			Message: fmt.Sprintf("You spent %.2f on %s in the last %d days; trimming it would free up budget",
				sums[i], group.Topic, cfg.LookbackDays),
		})
		amounts[group.Topic] = sums[i]
	}

	return topN(candidates, cfg.MaxSuggestions, func(a model.Alert) float64 {
		return amounts[a.SubjectName]
	})
}

func matchesAny(desc string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

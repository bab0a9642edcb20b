// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#6C9BCF")
	// SuccessColor indicates budgets comfortably under their cap.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates budgets approaching their cap.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates budgets over their cap.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// TipColor indicates savings recommendations.
	TipColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats healthy utilization lines.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats medium-severity alerts.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats high-severity alerts.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// TipStyle formats savings tips.
	TipStyle = lipgloss.NewStyle().
			Foreground(TipColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)
)

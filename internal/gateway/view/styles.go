// Package view renders API data for the terminal.
package view

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// GreenColor marks healthy values.
	GreenColor = lipgloss.Color("#2ECC71")
	// OrangeColor marks values approaching a limit.
	OrangeColor = lipgloss.Color("#F39C12")
	// RedColor marks exceeded limits and negative balances.
	RedColor = lipgloss.Color("#E74C3C")
	// SubtleColor is used for secondary text.
	SubtleColor = lipgloss.Color("#666666")
	// AccentColor is used for titles.
	AccentColor = lipgloss.Color("#667EEA")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	IncomeStyle = lipgloss.NewStyle().
			Foreground(GreenColor)

	ExpenseStyle = lipgloss.NewStyle().
			Foreground(RedColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(OrangeColor)

	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)

// balanceStyle colors a balance by its sign.
func balanceStyle(amount float64) lipgloss.Style {
	if amount < 0 {
		return ExpenseStyle
	}
	return IncomeStyle
}

package view

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Status classifies how much of a budget has been used.
type Status string

const (
	StatusOK       Status = "ok"
	StatusWarning  Status = "warning"
	StatusExceeded Status = "exceeded"
)

const (
	warningThreshold  = 80.0
	exceededThreshold = 100.0
)

// BudgetStatus returns ok below 80%, warning below 100% and exceeded from 100% on.
func BudgetStatus(percentUsed float64) Status {
	switch {
	case percentUsed < warningThreshold:
		return StatusOK
	case percentUsed < exceededThreshold:
		return StatusWarning
	default:
		return StatusExceeded
	}
}

// Color returns green, orange or red.
func (s Status) Color() lipgloss.Color {
	switch s {
	case StatusOK:
		return GreenColor
	case StatusWarning:
		return OrangeColor
	default:
		return RedColor
	}
}

// Ratio converts a percentage into a progress fraction clamped to [0, 1].
func Ratio(percent float64) float64 {
	r := percent / 100
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// ProgressBar renders a static bar filled to percent.
func ProgressBar(percent float64, width int, color lipgloss.Color) string {
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(Ratio(percent))
}

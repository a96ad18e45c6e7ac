package view

import (
	"github.com/finance-tracker/young-finance/internal/gateway/client"
)

// TrendSeries is the chart-ready form of the trend endpoint, oldest month first.
type TrendSeries struct {
	Labels  []string
	Income  []float64
	Expense []float64
	Balance []float64
}

// NewTrendSeries splits trend points into parallel series.
func NewTrendSeries(trends *client.Trends) TrendSeries {
	n := 0
	if trends != nil {
		n = len(trends.Trends)
	}

	s := TrendSeries{
		Labels:  make([]string, n),
		Income:  make([]float64, n),
		Expense: make([]float64, n),
		Balance: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		p := trends.Trends[i]
		s.Labels[i] = p.Label
		s.Income[i] = p.Income
		s.Expense[i] = p.Expense
		s.Balance[i] = p.Balance
	}
	return s
}

// Len returns the number of months in the series.
func (s TrendSeries) Len() int {
	return len(s.Labels)
}

// MaxAmount returns the largest income or expense value, used to scale bars.
func (s TrendSeries) MaxAmount() float64 {
	maxAmount := 0.0
	for i := range s.Labels {
		maxAmount = max(maxAmount, s.Income[i], s.Expense[i])
	}
	return maxAmount
}

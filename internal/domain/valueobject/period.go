// Package valueobject contains immutable domain values shared by several use cases.
package valueobject

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod is returned when a month or year is out of range.
var ErrInvalidPeriod = errors.New("invalid period")

// Period is a calendar month, the aggregation granularity for budgets and summaries.
type Period struct {
	Month time.Month
	Year  int
}

// NewPeriod validates and builds a Period.
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidPeriod, month)
	}
	if year < 1900 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, year)
	}
	return Period{Month: time.Month(month), Year: year}, nil
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: t.Month(), Year: t.Year()}
}

// Start returns midnight UTC of the first day of the period.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant after the period (exclusive bound).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Previous returns the period n calendar months before p.
func (p Period) Previous(n int) Period {
	return PeriodOf(p.Start().AddDate(0, -n, 0))
}

// Label formats the period as "m/yyyy".
func (p Period) Label() string {
	return fmt.Sprintf("%d/%d", int(p.Month), p.Year)
}

// LastPeriods returns n consecutive periods ending at current, oldest first.
func LastPeriods(current Period, n int) []Period {
	if n <= 0 {
		return nil
	}
	periods := make([]Period, n)
	for i := 0; i < n; i++ {
		periods[n-1-i] = current.Previous(i)
	}
	return periods
}

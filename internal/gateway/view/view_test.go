package view

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/young-finance/internal/gateway/client"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "zero", amount: 0, want: "₲ 0"},
		{name: "below a thousand", amount: 950, want: "₲ 950"},
		{name: "exact thousand", amount: 1000, want: "₲ 1.000"},
		{name: "millions", amount: 1234567, want: "₲ 1.234.567"},
		{name: "negative", amount: -1234, want: "₲ -1.234"},
		{name: "fraction rounds half to even", amount: 2500.5, want: "₲ 2.500"},
		{name: "fraction rounds up", amount: 2500.6, want: "₲ 2.501"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "30.0%", FormatPercent(30))
	assert.Equal(t, "99.9%", FormatPercent(99.94))
}

func TestBudgetStatus(t *testing.T) {
	tests := []struct {
		percent float64
		want    Status
	}{
		{percent: 0, want: StatusOK},
		{percent: 79.9, want: StatusOK},
		{percent: 80, want: StatusWarning},
		{percent: 99.9, want: StatusWarning},
		{percent: 100, want: StatusExceeded},
		{percent: 150, want: StatusExceeded},
	}

	for _, tt := range tests {
		got := BudgetStatus(tt.percent)
		assert.Equal(t, tt.want, got, "percent %v", tt.percent)
	}

	assert.Equal(t, GreenColor, StatusOK.Color())
	assert.Equal(t, OrangeColor, StatusWarning.Color())
	assert.Equal(t, RedColor, StatusExceeded.Color())
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(-10))
	assert.Equal(t, 0.5, Ratio(50))
	assert.Equal(t, 1.0, Ratio(150))
}

func TestNewTrendSeries(t *testing.T) {
	trends := &client.Trends{Trends: []client.TrendPoint{
		{Month: 11, Year: 2025, Label: "Nov 2025", Income: 100, Expense: 250, Balance: -150},
		{Month: 12, Year: 2025, Label: "Dec 2025", Income: 300, Expense: 50, Balance: 250},
	}}

	s := NewTrendSeries(trends)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"Nov 2025", "Dec 2025"}, s.Labels)
	assert.Equal(t, []float64{-150, 250}, s.Balance)
	assert.Equal(t, 300.0, s.MaxAmount())

	empty := NewTrendSeries(nil)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0.0, empty.MaxAmount())
}

func TestRenderers_EmptyStates(t *testing.T) {
	var buf bytes.Buffer

	Dashboard(&buf, nil)
	Summary(&buf, nil)
	TrendChart(&buf, NewTrendSeries(nil))
	Transactions(&buf, nil)
	Budgets(&buf, nil)
	Goals(&buf, nil)
	Categories(&buf, nil)
	Lessons(&buf, nil)

	out := buf.String()
	assert.Contains(t, out, "Sin datos disponibles")
	assert.Contains(t, out, "No hay transacciones")
	assert.Contains(t, out, "No hay presupuestos")
	assert.Contains(t, out, "No hay metas")
	assert.Contains(t, out, "No hay lecciones disponibles")
}

func TestRenderers_Content(t *testing.T) {
	var buf bytes.Buffer
	food := "Comida"

	Summary(&buf, &client.MonthlySummary{
		Month: 1, Year: 2026, TotalIncome: 200000, TotalExpense: 50000, Balance: 150000,
		ExpensesByCategory: []client.CategoryTotal{{Category: "Comida", Total: 50000}},
	})
	Transactions(&buf, []client.Transaction{
		{Description: "Almuerzo", Amount: 25000, Type: "expense", CategoryName: &food, Date: "2026-01-10"},
		{Description: "Mesada", Amount: 100000, Type: "income", Date: "2026-01-01"},
	})
	Budgets(&buf, []client.Budget{
		{Name: "Comida enero", CategoryName: "Comida", LimitAmount: 100000, Spent: 30000, PercentUsed: 30, Remaining: 70000, Month: 1, Year: 2026},
	})
	days := 12
	Goals(&buf, []client.Goal{
		{ID: "g1", Title: "Bicicleta", Status: "in_progress", TargetAmount: 1000000, CurrentAmount: 250000, PercentComplete: 25, Remaining: 750000, DaysRemaining: &days},
	})

	out := buf.String()
	assert.Contains(t, out, "₲ 200.000")
	assert.Contains(t, out, "₲ 150.000")
	assert.Contains(t, out, "Almuerzo")
	assert.Contains(t, out, "Sin categoría")
	assert.Contains(t, out, "30.0% del presupuesto usado")
	assert.Contains(t, out, "Bicicleta")
	assert.Contains(t, out, "12 días restantes")
}

func TestWarning(t *testing.T) {
	var buf bytes.Buffer

	Warning(&buf, "no se pudo cargar el resumen", errors.New("connection refused"))

	assert.Contains(t, buf.String(), "no se pudo cargar el resumen: connection refused")
}

func TestLessonBrowser(t *testing.T) {
	lessons := []client.Lesson{
		{ID: "1", Title: "Qué es un presupuesto", Level: "basic", DurationMinutes: 5, Content: "Un presupuesto es un plan."},
		{ID: "2", Title: "Ahorro", Level: "basic", DurationMinutes: 7, Content: "Ahorrar es guardar."},
	}

	var m tea.Model = NewLessonBrowser(lessons)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	b := m.(LessonBrowser)
	selected, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, "2", selected.ID)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	selected, _ = m.(LessonBrowser).Selected()
	assert.Equal(t, "2", selected.ID, "cursor stops at the last lesson")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.(LessonBrowser).Open())
	assert.Contains(t, m.View(), "Ahorrar es guardar.")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	selected, _ = m.(LessonBrowser).Selected()
	assert.Equal(t, "2", selected.ID, "navigation is disabled while a lesson is open")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.(LessonBrowser).Open())
	assert.Contains(t, m.View(), "Qué es un presupuesto")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLessonBrowser_Empty(t *testing.T) {
	m := NewLessonBrowser(nil)

	_, ok := m.Selected()
	assert.False(t, ok)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, updated.(LessonBrowser).Open())
	assert.Contains(t, updated.View(), "No hay lecciones disponibles")
}

package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/finance-tracker/young-finance/internal/gateway/client"
)

const barWidth = 30

// Warning prints an inline warning. Views call it and keep going with what they have.
func Warning(w io.Writer, context string, err error) {
	fmt.Fprintln(w, WarningStyle.Render("⚠ "+context+": "+err.Error()))
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(SubtleColor)).
		Headers(headers...)
}

// Dashboard renders the dashboard snapshot. A nil snapshot renders an empty state.
func Dashboard(w io.Writer, d *client.Dashboard) {
	fmt.Fprintln(w, TitleStyle.Render("Panel financiero"))
	if d == nil {
		fmt.Fprintln(w, SubtitleStyle.Render("Sin datos disponibles"))
		return
	}

	m := d.CurrentMonth
	metrics := []string{
		metric("Ingresos", IncomeStyle.Render(FormatCurrency(m.Income))),
		metric("Gastos", ExpenseStyle.Render(FormatCurrency(m.Expense))),
		metric("Balance", balanceStyle(m.Balance).Render(FormatCurrency(m.Balance))),
		metric("Metas activas", fmt.Sprintf("%d", d.Goals.Count)),
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, metrics...))
	fmt.Fprintf(w, "%s %d/%d\n\n", SubtitleStyle.Render("Mes"), m.Month, m.Year)

	fmt.Fprintln(w, BoldStyle.Render("Presupuesto del mes"))
	if m.BudgetTotal > 0 {
		percent := m.BudgetUsed / m.BudgetTotal * 100
		status := BudgetStatus(percent)
		fmt.Fprintf(w, "%s %s\n", ProgressBar(percent, barWidth, status.Color()), FormatPercent(percent))
		fmt.Fprintf(w, "Usado %s de %s, restante %s\n\n",
			FormatCurrency(m.BudgetUsed), FormatCurrency(m.BudgetTotal),
			balanceStyle(m.BudgetRemaining).Render(FormatCurrency(m.BudgetRemaining)))
	} else {
		fmt.Fprintln(w, SubtitleStyle.Render("No hay presupuestos para este mes"))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, BoldStyle.Render("Metas"))
	if d.Goals.Count > 0 {
		fmt.Fprintf(w, "%s %s\n", ProgressBar(d.Goals.AveragePercent, barWidth, AccentColor), FormatPercent(d.Goals.AveragePercent))
		fmt.Fprintf(w, "Ahorrado %s de %s\n\n", FormatCurrency(d.Goals.TotalSaved), FormatCurrency(d.Goals.TotalTarget))
	} else {
		fmt.Fprintln(w, SubtitleStyle.Render("No hay metas activas"))
		fmt.Fprintln(w)
	}

	if len(d.TopCategories) > 0 {
		t := newTable("Categoría", "Transacciones", "Total")
		for _, c := range d.TopCategories {
			t.Row(c.Category, fmt.Sprintf("%d", c.TransactionCount), FormatCurrency(c.Total))
		}
		fmt.Fprintln(w, BoldStyle.Render("Categorías más usadas"))
		fmt.Fprintln(w, t.String())
	}
}

func metric(label, value string) string {
	return BoxStyle.Render(SubtitleStyle.Render(label) + "\n" + value)
}

// Summary renders the monthly summary.
func Summary(w io.Writer, s *client.MonthlySummary) {
	if s == nil {
		fmt.Fprintln(w, TitleStyle.Render("Resumen mensual"))
		fmt.Fprintln(w, SubtitleStyle.Render("Sin datos disponibles"))
		return
	}

	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("Resumen %d/%d", s.Month, s.Year)))
	fmt.Fprintf(w, "Ingresos: %s\n", IncomeStyle.Render(FormatCurrency(s.TotalIncome)))
	fmt.Fprintf(w, "Gastos:   %s\n", ExpenseStyle.Render(FormatCurrency(s.TotalExpense)))
	fmt.Fprintf(w, "Balance:  %s\n\n", balanceStyle(s.Balance).Render(FormatCurrency(s.Balance)))

	if len(s.ExpensesByCategory) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("Sin gastos en el período"))
		return
	}

	t := newTable("Categoría", "Total", "")
	for _, c := range s.ExpensesByCategory {
		share := 0.0
		if s.TotalExpense > 0 {
			share = c.Total / s.TotalExpense * 100
		}
		t.Row(c.Category, FormatCurrency(c.Total), FormatPercent(share))
	}
	fmt.Fprintln(w, t.String())
}

// TrendChart renders the trend series as paired horizontal bars per month.
func TrendChart(w io.Writer, series TrendSeries) {
	fmt.Fprintln(w, TitleStyle.Render("Tendencias"))
	if series.Len() == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("Sin datos disponibles"))
		return
	}

	scale := series.MaxAmount()
	for i, label := range series.Labels {
		incomeBar, expenseBar := "", ""
		if scale > 0 {
			incomeBar = strings.Repeat("█", int(series.Income[i]/scale*barWidth))
			expenseBar = strings.Repeat("█", int(series.Expense[i]/scale*barWidth))
		}
		fmt.Fprintf(w, "%-8s %s %s\n", label, IncomeStyle.Render(incomeBar), FormatCurrency(series.Income[i]))
		fmt.Fprintf(w, "%-8s %s %s\n", "", ExpenseStyle.Render(expenseBar), FormatCurrency(series.Expense[i]))
		fmt.Fprintf(w, "%-8s balance %s\n", "", balanceStyle(series.Balance[i]).Render(FormatCurrency(series.Balance[i])))
	}
}

// Transactions renders a transaction table.
func Transactions(w io.Writer, txs []client.Transaction) {
	fmt.Fprintln(w, TitleStyle.Render("Transacciones"))
	if len(txs) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No hay transacciones"))
		return
	}

	t := newTable("Fecha", "Descripción", "Categoría", "Monto")
	for _, tx := range txs {
		category := "Sin categoría"
		if tx.CategoryName != nil {
			category = *tx.CategoryName
		}
		amount := FormatCurrency(tx.Amount)
		if tx.Type == "expense" {
			amount = ExpenseStyle.Render("-" + amount)
		} else {
			amount = IncomeStyle.Render("+" + amount)
		}
		t.Row(tx.Date, tx.Description, category, amount)
	}
	fmt.Fprintln(w, t.String())
}

// Budgets renders each budget with a status-colored progress bar.
func Budgets(w io.Writer, budgets []client.Budget) {
	fmt.Fprintln(w, TitleStyle.Render("Presupuestos"))
	if len(budgets) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No hay presupuestos"))
		return
	}

	for _, b := range budgets {
		status := BudgetStatus(b.PercentUsed)
		header := fmt.Sprintf("%s (%s) %d/%d", b.Name, b.CategoryName, b.Month, b.Year)
		fmt.Fprintln(w, BoldStyle.Render(header))
		fmt.Fprintf(w, "%s %s\n", ProgressBar(b.PercentUsed, barWidth, status.Color()),
			lipgloss.NewStyle().Foreground(status.Color()).Render(FormatPercent(b.PercentUsed)+" del presupuesto usado"))
		fmt.Fprintf(w, "Gastado %s de %s, restante %s\n\n",
			FormatCurrency(b.Spent), FormatCurrency(b.LimitAmount), FormatCurrency(b.Remaining))
	}
}

// Goals renders each goal with its progress.
func Goals(w io.Writer, goals []client.Goal) {
	fmt.Fprintln(w, TitleStyle.Render("Metas de ahorro"))
	if len(goals) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No hay metas"))
		return
	}

	for _, g := range goals {
		fmt.Fprintf(w, "%s %s\n", BoldStyle.Render(g.Title), SubtitleStyle.Render("["+g.Status+"] "+g.ID))
		color := AccentColor
		if g.Status == "completed" {
			color = GreenColor
		}
		fmt.Fprintf(w, "%s %s\n", ProgressBar(g.PercentComplete, barWidth, color), FormatPercent(g.PercentComplete))
		line := fmt.Sprintf("Ahorrado %s de %s, faltan %s",
			FormatCurrency(g.CurrentAmount), FormatCurrency(g.TargetAmount), FormatCurrency(g.Remaining))
		if g.DaysRemaining != nil {
			line += fmt.Sprintf(", %d días restantes", *g.DaysRemaining)
		}
		fmt.Fprintln(w, line)
		fmt.Fprintln(w)
	}
}

// Categories renders the category table.
func Categories(w io.Writer, categories []client.Category) {
	fmt.Fprintln(w, TitleStyle.Render("Categorías"))
	if len(categories) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No hay categorías"))
		return
	}

	t := newTable("", "Nombre", "Tipo", "ID")
	for _, c := range categories {
		t.Row(c.Icon, c.Name, c.Type, c.ID)
	}
	fmt.Fprintln(w, t.String())
}

// Lessons renders the lesson list with full content.
func Lessons(w io.Writer, lessons []client.Lesson) {
	fmt.Fprintln(w, TitleStyle.Render("Educación financiera"))
	if len(lessons) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("No hay lecciones disponibles"))
		return
	}

	for _, l := range lessons {
		fmt.Fprintln(w, BoldStyle.Render(lessonTitle(l)))
		fmt.Fprintln(w, l.Content)
		fmt.Fprintln(w)
	}
}

func lessonTitle(l client.Lesson) string {
	return fmt.Sprintf("%s - %s (%d min)", l.Title, l.Level, l.DurationMinutes)
}

package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/young-finance/internal/gateway/client"
	"github.com/finance-tracker/young-finance/internal/gateway/view"
)

func (a *app) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the current month, goals and top categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			dashboard, err := a.api.Dashboard(cmd.Context())
			if err != nil {
				view.Warning(out, "no se pudo cargar el panel", err)
			}
			view.Dashboard(out, dashboard)
			return nil
		},
	}
}

func (a *app) summaryCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expenses and balance for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			summary, err := a.api.MonthlySummary(cmd.Context(), month, year)
			if err != nil {
				view.Warning(out, "no se pudo cargar el resumen", err)
			}
			view.Summary(out, summary)
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default: current)")
	cmd.Flags().IntVar(&year, "year", 0, "year (default: current)")
	return cmd
}

func (a *app) trendsCmd() *cobra.Command {
	var periods int

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show income and expense trends over recent months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			trends, err := a.api.Trends(cmd.Context(), periods)
			if err != nil {
				view.Warning(out, "no se pudieron cargar las tendencias", err)
			}
			view.TrendChart(out, view.NewTrendSeries(trends))
			return nil
		},
	}

	cmd.Flags().IntVar(&periods, "periods", 6, "number of months, 1-24")
	return cmd
}

func (a *app) lessonsCmd() *cobra.Command {
	var level string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "Browse financial education lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			lessons, err := a.api.ListLessons(cmd.Context(), level)
			if err != nil {
				view.Warning(out, "no se pudieron cargar las lecciones", err)
			}

			if !interactive {
				view.Lessons(out, lessons)
				return nil
			}

			program := tea.NewProgram(view.NewLessonBrowser(lessons),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(out),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("lesson browser: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "filter by level (basic, intermediate, advanced)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the interactive browser")
	return cmd
}

// currentPeriod fills zero month/year with today's values.
func currentPeriod(month, year int) (int, int) {
	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

func categoryName(tx *client.Transaction) string {
	if tx.CategoryName == nil {
		return "sin categoría"
	}
	return *tx.CategoryName
}

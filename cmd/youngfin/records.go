package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/young-finance/internal/gateway/client"
	"github.com/finance-tracker/young-finance/internal/gateway/view"
)

func (a *app) transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "List and record transactions",
	}

	var filter client.TransactionFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			txs, err := a.api.ListTransactions(cmd.Context(), filter)
			if err != nil {
				view.Warning(out, "no se pudieron cargar las transacciones", err)
			}
			view.Transactions(out, txs)
			return nil
		},
	}
	list.Flags().StringVar(&filter.Type, "type", "", "expense or income")
	list.Flags().StringVar(&filter.CategoryID, "category", "", "category ID")
	list.Flags().StringVar(&filter.DateFrom, "from", "", "start date YYYY-MM-DD")
	list.Flags().StringVar(&filter.DateTo, "to", "", "end date YYYY-MM-DD")

	var req client.NewTransaction
	var amount, categoryID string
	add := &cobra.Command{
		Use:   "add <description>",
		Short: "Record a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseAmount(amount)
			if err != nil {
				return err
			}
			req.Description = args[0]
			req.Amount = value
			if categoryID != "" {
				req.CategoryID = &categoryID
			}

			tx, err := a.api.CreateTransaction(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("no se pudo registrar la transacción: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Transacción registrada: %s %s (%s) %s\n",
				tx.Description, view.FormatCurrency(tx.Amount), categoryName(tx), tx.ID)
			return nil
		},
	}
	add.Flags().StringVar(&amount, "amount", "", "amount, greater than zero")
	add.Flags().StringVar(&req.Type, "type", "expense", "expense or income")
	add.Flags().StringVar(&categoryID, "category", "", "category ID")
	add.Flags().StringVar(&req.Date, "date", "", "date YYYY-MM-DD (default: today)")
	add.Flags().StringVar(&req.Notes, "notes", "", "free-form notes")
	_ = add.MarkFlagRequired("amount")

	cmd.AddCommand(list, add)
	return cmd
}

func (a *app) budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "List and create monthly budgets",
	}

	var month, year int
	list := &cobra.Command{
		Use:   "list",
		Short: "List budgets with spending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			budgets, err := a.api.ListBudgets(cmd.Context(), month, year)
			if err != nil {
				view.Warning(out, "no se pudieron cargar los presupuestos", err)
			}
			view.Budgets(out, budgets)
			return nil
		},
	}
	list.Flags().IntVar(&month, "month", 0, "month 1-12")
	list.Flags().IntVar(&year, "year", 0, "year")

	var req client.NewBudget
	var limit string
	add := &cobra.Command{
		Use:   "add <category-id>",
		Short: "Create a budget for an expense category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := decimal.NewFromString(limit)
			if err != nil || value.IsNegative() {
				return fmt.Errorf("invalid limit %q: must be zero or greater", limit)
			}
			req.CategoryID = args[0]
			req.LimitAmount = &value
			req.Month, req.Year = currentPeriod(req.Month, req.Year)

			budget, err := a.api.CreateBudget(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("no se pudo crear el presupuesto: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Presupuesto creado: %s %s para %d/%d %s\n",
				budget.CategoryName, view.FormatCurrency(budget.LimitAmount), budget.Month, budget.Year, budget.ID)
			return nil
		},
	}
	add.Flags().StringVar(&limit, "limit", "", "monthly limit")
	add.Flags().StringVar(&req.Name, "name", "", "budget name")
	add.Flags().IntVar(&req.Month, "month", 0, "month 1-12 (default: current)")
	add.Flags().IntVar(&req.Year, "year", 0, "year (default: current)")
	_ = add.MarkFlagRequired("limit")

	cmd.AddCommand(list, add)
	return cmd
}

func (a *app) goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Track savings goals",
	}

	var status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			goals, err := a.api.ListGoals(cmd.Context(), status)
			if err != nil {
				view.Warning(out, "no se pudieron cargar las metas", err)
			}
			view.Goals(out, goals)
			return nil
		},
	}
	list.Flags().StringVar(&status, "status", "", "in_progress, completed or cancelled")

	var req client.NewGoal
	var target string
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseAmount(target)
			if err != nil {
				return err
			}
			req.Title = args[0]
			req.TargetAmount = value

			goal, err := a.api.CreateGoal(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("no se pudo crear la meta: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Meta creada: %s %s %s\n",
				goal.Title, view.FormatCurrency(goal.TargetAmount), goal.ID)
			return nil
		},
	}
	add.Flags().StringVar(&target, "target", "", "target amount")
	add.Flags().StringVar(&req.Description, "description", "", "description")
	add.Flags().StringVar(&req.TargetDate, "date", "", "target date YYYY-MM-DD")
	_ = add.MarkFlagRequired("target")

	contribute := &cobra.Command{
		Use:   "add-amount <goal-id> <amount>",
		Short: "Add savings to a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			result, err := a.api.AddAmount(cmd.Context(), args[0], value)
			if err != nil {
				return fmt.Errorf("no se pudo agregar el monto: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s de %s (%s)\n", result.Title,
				view.FormatCurrency(result.CurrentAmount), view.FormatCurrency(result.TargetAmount),
				view.FormatPercent(result.PercentComplete))
			if result.Completed {
				fmt.Fprintln(out, view.IncomeStyle.Render("¡Meta completada!"))
			}
			return nil
		},
	}

	cmd.AddCommand(list, add, contribute)
	return cmd
}

func (a *app) categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List and create categories",
	}

	var categoryType string
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			categories, err := a.api.ListCategories(cmd.Context(), categoryType)
			if err != nil {
				view.Warning(out, "no se pudieron cargar las categorías", err)
			}
			view.Categories(out, categories)
			return nil
		},
	}
	list.Flags().StringVar(&categoryType, "type", "", "expense or income")

	var req client.NewCategory
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Name = args[0]

			category, err := a.api.CreateCategory(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("no se pudo crear la categoría: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Categoría creada: %s %s (%s) %s\n",
				category.Icon, category.Name, category.Type, category.ID)
			return nil
		},
	}
	add.Flags().StringVar(&req.Type, "type", "expense", "expense or income")
	add.Flags().StringVar(&req.Icon, "icon", "", "icon")
	add.Flags().StringVar(&req.Color, "color", "", "hex color, e.g. #FF5733")
	add.Flags().StringVar(&req.Description, "description", "", "description")

	cmd.AddCommand(list, add)
	return cmd
}

func parseAmount(raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("invalid amount %q: must be greater than zero", raw)
	}
	return value, nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/young-finance/internal/gateway/ofx"
	"github.com/finance-tracker/young-finance/internal/gateway/view"
)

func (a *app) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import transactions from bank files",
	}

	var categoryID string
	var quiet bool
	ofxCmd := &cobra.Command{
		Use:   "ofx <file>",
		Short: "Import an OFX/QFX bank statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			entries, err := ofx.Parse(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, view.SubtitleStyle.Render("El archivo no tiene movimientos"))
				return nil
			}

			var bar *progressbar.ProgressBar
			if !quiet {
				bar = progressbar.NewOptions(len(entries),
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionShowCount(),
					progressbar.OptionSetWidth(40),
					progressbar.OptionSetDescription("Importando movimientos"),
					progressbar.OptionClearOnFinish(),
				)
			}

			var imported, failed int
			for _, entry := range entries {
				if err := cmd.Context().Err(); err != nil {
					return err
				}

				if _, err := a.api.CreateTransaction(cmd.Context(), entry.ToNewTransaction(categoryID)); err != nil {
					failed++
					slog.Warn("failed to import transaction", "fitid", entry.FiTID, "error", err)
				} else {
					imported++
				}

				if bar != nil {
					_ = bar.Add(1)
				}
			}

			fmt.Fprintf(out, "Importadas %d de %d transacciones\n", imported, len(entries))
			if failed > 0 {
				return fmt.Errorf("%d transacciones no se pudieron importar", failed)
			}
			return nil
		},
	}
	ofxCmd.Flags().StringVar(&categoryID, "category", "", "category ID assigned to every imported transaction")
	ofxCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")

	cmd.AddCommand(ofxCmd)
	return cmd
}

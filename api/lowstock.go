package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/products-msv/internal/config"
)

var lowStockCmd = &cobra.Command{
	Use:   "low-stock",
	Short: "Print the products currently below the low-stock threshold",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		app, err := newApplication(cmd.Context(), cfg, zap.NewNop())
		if err != nil {
			return err
		}
		defer app.close()

		products, err := app.inventory.LowStock(cmd.Context(), cfg.MonitorThreshold)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SKU\tNAME\tSTOCK")
		for _, p := range products {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", p.SKU, p.Name, p.Stock)
		}
		return tw.Flush()
	},
}

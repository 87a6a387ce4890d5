package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/products-msv/internal/config"
)

var v = config.New()

// @title Products MSV
// @version 1.0
// @description Product management API: add products, update stocks, and place orders.
// @license.name MIT License
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "inventoryd",
	Short:         "Product inventory service",
	Long:          "inventoryd serves the product inventory API and watches for low-stock products.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool("testing", false, "use an ephemeral in-memory store that is dropped on shutdown")
	flags.String("db-driver", "", "database driver (sqlite3 or pgx)")
	flags.String("db-dsn", "", "database data source name")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	flags.String("addr", "", "HTTP listen address")
	flags.Duration("monitor-interval", 0, "low-stock poll interval")
	flags.Int("monitor-threshold", 0, "low-stock threshold")

	for key, name := range map[string]string{
		config.KeyTesting:          "testing",
		config.KeyDBDriver:         "db-driver",
		config.KeyDBDSN:            "db-dsn",
		config.KeyLogLevel:         "log-level",
		config.KeyHTTPAddr:         "addr",
		config.KeyMonitorInterval:  "monitor-interval",
		config.KeyMonitorThreshold: "monitor-threshold",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(lowStockCmd)
}

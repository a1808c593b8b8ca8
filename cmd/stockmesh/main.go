package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Load .env if present so STOCKMESH_* overrides work in local setups.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "stockmesh",
		Short: "Multi-agent retail inventory simulation",
		Long: `stockmesh runs a multi-agent inventory control simulation.

Six agents (customer, store, warehouse, supplier, forecasting, pricing)
act on a shared product catalog. Purchases that drop a shelf below its
threshold trigger a delayed restock, which can escalate to a supplier
reorder and delivery, forming an observable causal chain in the
activity log.`,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newCatalogCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/stockmesh"
	"github.com/hupe1980/stockmesh/config"
	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/engine"
	"github.com/hupe1980/stockmesh/export"
	"github.com/hupe1980/stockmesh/logging"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a randomized simulation session",
		Long: `Run the simulation for a fixed duration, firing a random agent
trigger on every tick: mostly purchases, with occasional forecasts and
price adjustments. Restocks, reorders and deliveries follow from the
causal chain on their own. Prints the final state and the activity log
when the session ends.

Example:
  stockmesh run --duration 30s --tick 3s --export-logs activity.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			duration, _ := cmd.Flags().GetDuration("duration")
			tick, _ := cmd.Flags().GetDuration("tick")
			seed, _ := cmd.Flags().GetUint64("seed")
			exportLogs, _ := cmd.Flags().GetString("export-logs")
			exportHistory, _ := cmd.Flags().GetString("export-history")
			format, _ := cmd.Flags().GetString("format")

			if format != "jsonl" && format != "csv" {
				return fmt.Errorf("invalid format: %s (must be jsonl or csv)", format)
			}

			rng := rand.New(rand.NewPCG(seed, seed))

			m := stockmesh.New(func(o *stockmesh.Options) {
				o.EngineConfig = engine.Config{
					TimeUnit:           cfg.TimeUnit,
					RestockDelayUnits:  cfg.RestockDelayUnits,
					SupplierDelayUnits: cfg.SupplierDelayUnits,
					LogCapacity:        cfg.LogCapacity,
				}
				o.Catalog = cfg.Products()
				o.Logger = logger
			})
			m.Start()
			defer m.Stop()

			products := m.Products()
			fmt.Printf("Running simulation: %d products, tick %s, duration %s.\n\n",
				len(products), tick, duration)

			ticker := time.NewTicker(tick)
			defer ticker.Stop()
			deadline := time.After(duration)
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigCh)

		loop:
			for {
				select {
				case <-ticker.C:
					fireRandomTrigger(m, rng, products)
				case <-deadline:
					break loop
				case <-sigCh:
					fmt.Println("\nInterrupted.")
					break loop
				}
			}

			printSummary(m)

			if exportLogs != "" {
				if err := writeEntries(format, exportLogs, m.Logs()); err != nil {
					return fmt.Errorf("exporting logs: %w", err)
				}
				fmt.Printf("Activity log written to %s.\n", exportLogs)
			}
			if exportHistory != "" {
				if err := writeSamples(format, exportHistory, m.History()); err != nil {
					return fmt.Errorf("exporting history: %w", err)
				}
				fmt.Printf("Stock history written to %s.\n", exportHistory)
			}

			return nil
		},
	}

	cmd.Flags().Duration("duration", 30*time.Second, "How long to run the session")
	cmd.Flags().Duration("tick", 3*time.Second, "Interval between random triggers")
	cmd.Flags().Uint64("seed", uint64(time.Now().UnixNano()), "Random seed for the trigger driver")
	cmd.Flags().String("export-logs", "", "Write the activity log to this file on exit")
	cmd.Flags().String("export-history", "", "Write the stock history to this file on exit")
	cmd.Flags().String("format", "jsonl", "Export format (jsonl, csv)")

	return cmd
}

// fireRandomTrigger picks a product and an agent action. Purchases dominate so
// the restock chain gets exercised; forecasts and price adjustments add
// narration without moving stock.
func fireRandomTrigger(m *stockmesh.StockMesh, rng *rand.Rand, products []core.Product) {
	if len(products) == 0 {
		return
	}
	id := products[rng.IntN(len(products))].ID

	switch r := rng.Float64(); {
	case r < 0.6:
		m.Purchase(id, 1+rng.IntN(3))
	case r < 0.8:
		m.TriggerForecast(id)
	default:
		m.TriggerPriceAdjustment(id)
	}
}

func printSummary(m *stockmesh.StockMesh) {
	fmt.Println("Final inventory:")
	for _, p := range m.Products() {
		fmt.Printf("  %2d  %-22s store: %3d  warehouse: %3d  price: $%.2f\n",
			p.ID, p.Name, p.StoreStock, p.WarehouseStock, p.Price)
	}

	logs := m.Logs()
	fmt.Printf("\nActivity log (%d entries, newest first):\n", len(logs))
	for _, e := range logs {
		fmt.Printf("  [%s] %-17s %s\n", e.Timestamp.Format("15:04:05"), e.Agent, e.Message)
	}

	if pending := m.PendingActions(); pending > 0 {
		fmt.Printf("\n%d scheduled action(s) still pending at shutdown.\n", pending)
	}
	fmt.Println()
}

func writeEntries(format, filename string, entries []core.Entry) error {
	if format == "csv" {
		return export.EntriesToCSVFile(filename, entries)
	}
	return export.EntriesToJSONLFile(filename, entries)
}

func writeSamples(format, filename string, samples []core.Sample) error {
	if format == "csv" {
		return export.SamplesToCSVFile(filename, samples)
	}
	return export.SamplesToJSONLFile(filename, samples)
}

// loadConfig merges the YAML config (if given), STOCKMESH_* environment
// overrides and the logging flags into a validated config plus a logger.
func loadConfig(cmd *cobra.Command) (config.Config, logging.Logger, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.Logging.Format = format
	}

	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format, os.Stderr)
	return cfg, logger, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the product catalog the simulation starts from",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			fmt.Printf("%-4s %-22s %-6s %-10s %-10s %-10s %s\n",
				"ID", "NAME", "STORE", "WAREHOUSE", "PRICE", "THRESHOLD", "LOT")
			for _, p := range cfg.Products() {
				fmt.Printf("%-4d %-22s %-6d %-10d $%-9.2f %-10d %d\n",
					p.ID, p.Name, p.StoreStock, p.WarehouseStock, p.Price, p.Threshold, p.SupplierQuantity)
			}
			return nil
		},
	}
}

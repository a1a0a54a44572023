package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/infrastructure/repository"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty store with a small demo data set",
	Long: `Seed writes a handful of salespersons, customers and products so a
fresh install has something to order against. Existing master-data
tables are replaced; the order ledger is never touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		rosterRepo := repository.NewRosterRepository(store)
		catalogRepo := repository.NewCatalogRepository(store)

		salespersons := []entity.Salesperson{
			{Code: "01", Name: "Alice Tan"},
			{Code: "02", Name: "Ben Ortiz"},
			{Code: "03", Name: "Chen Wei"},
		}
		customers := []entity.Customer{
			{ID: "C001", Name: "Harbor Pharmacy", SalespersonName: "Alice Tan"},
			{ID: "C002", Name: "Lakeside Clinic", SalespersonName: "Alice Tan"},
			{ID: "C003", Name: "Summit Drugstore", SalespersonName: "Ben Ortiz"},
			{ID: "C004", Name: "Valley Health Mart", SalespersonName: "Chen Wei"},
		}
		products := []entity.Product{
			{ID: "P1001", Name: "Vitamin C 500mg 60ct", Brand: "Sunrise"},
			{ID: "P1002", Name: "Ibuprofen 200mg 100ct", Brand: "Sunrise"},
			{ID: "P2001", Name: "Saline Nasal Spray", Brand: "ClearAir"},
			{ID: "P3001", Name: "Bandage Roll 5m", Brand: "MediWrap"},
		}

		if err := rosterRepo.Replace(ctx, salespersons); err != nil {
			return err
		}
		if err := catalogRepo.ReplaceCustomers(ctx, customers); err != nil {
			return err
		}
		if err := catalogRepo.ReplaceProducts(ctx, products); err != nil {
			return err
		}

		fmt.Printf("Seeded %d salespersons, %d customers, %d products\n",
			len(salespersons), len(customers), len(products))
		return nil
	},
}

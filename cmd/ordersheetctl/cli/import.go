package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ordersheet/ordersheet-api/internal/application/service"
	"github.com/ordersheet/ordersheet-api/internal/infrastructure/repository"
)

var importCmd = &cobra.Command{
	Use:   "import [customers|products|salespersons] <workbook.xlsx>",
	Short: "Replace a master-data table from an xlsx workbook",
	Long: `Import reads the first worksheet of the given workbook (skipping the
header row) and replaces the named table with its rows. Customers take
id, name and an optional salesperson affiliation; products take id,
name and brand; salespersons take code and name.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, path := args[0], args[1]

		store, err := openStore()
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		svc := service.NewAdminService(
			repository.NewRosterRepository(store),
			repository.NewCatalogRepository(store),
			repository.NewLedgerRepository(store),
		)

		ctx := cmd.Context()
		var count int
		switch kind {
		case "customers":
			count, err = svc.ImportCustomers(ctx, f)
		case "products":
			count, err = svc.ImportProducts(ctx, f)
		case "salespersons":
			count, err = svc.ImportSalespersons(ctx, f)
		default:
			return fmt.Errorf("unknown import target %q", kind)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d %s from %s\n", count, kind, path)
		return nil
	},
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ordersheet/ordersheet-api/internal/application/service"
	"github.com/ordersheet/ordersheet-api/internal/infrastructure/repository"
)

var exportCmd = &cobra.Command{
	Use:   "export <output.xlsx>",
	Short: "Write the whole order ledger to an xlsx workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		store, err := openStore()
		if err != nil {
			return err
		}

		out, err := os.Create(path)
		if err != nil {
			return err
		}
		defer out.Close()

		svc := service.NewAdminService(
			repository.NewRosterRepository(store),
			repository.NewCatalogRepository(store),
			repository.NewLedgerRepository(store),
		)

		count, err := svc.ExportLedger(cmd.Context(), out)
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d ledger rows to %s\n", count, path)
		return nil
	},
}

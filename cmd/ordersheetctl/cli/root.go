package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ordersheet/ordersheet-api/internal/config"
	domainRepo "github.com/ordersheet/ordersheet-api/internal/domain/repository"
	"github.com/ordersheet/ordersheet-api/internal/infrastructure/database"
	"github.com/ordersheet/ordersheet-api/internal/infrastructure/sheetstore"
)

var (
	backend  string
	workbook string
)

// rootCmd is the base command for the order sheet admin tool.
var rootCmd = &cobra.Command{
	Use:   "ordersheetctl",
	Short: "Admin tool for the order sheet data store",
	Long: `ordersheetctl manages the order sheet data store directly, without
going through the API server: import master data from xlsx workbooks,
export the order ledger, and seed an empty store.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "store backend: sheet or postgres (default from env)")
	rootCmd.PersistentFlags().StringVar(&workbook, "workbook", "", "workbook path for the sheet backend (default from env)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openStore builds a tabular store from env configuration, with the
// persistent flags taking precedence.
func openStore() (domainRepo.TabularStore, error) {
	cfg := config.Load()
	if backend != "" {
		cfg.Store.Backend = backend
	}
	if workbook != "" {
		cfg.Store.WorkbookPath = workbook
	}

	switch cfg.Store.Backend {
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
		return database.NewStore(db), nil
	case "", "sheet":
		return sheetstore.New(cfg.Store.WorkbookPath), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

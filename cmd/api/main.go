package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ordersheet/ordersheet-api/internal/application/service"
	"github.com/ordersheet/ordersheet-api/internal/config"
	domainRepo "github.com/ordersheet/ordersheet-api/internal/domain/repository"
	"github.com/ordersheet/ordersheet-api/internal/infrastructure/database"
	"github.com/ordersheet/ordersheet-api/internal/infrastructure/repository"
	"github.com/ordersheet/ordersheet-api/internal/infrastructure/sheetstore"
	"github.com/ordersheet/ordersheet-api/internal/presentation/http/handler"
	"github.com/ordersheet/ordersheet-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the tabular store backend
	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Backend, err)
	}

	// Initialize repositories
	ledgerRepo := repository.NewLedgerRepository(store)
	rosterRepo := repository.NewRosterRepository(store)
	catalogRepo := repository.NewCatalogRepository(store)
	idempotencyRepo := repository.NewIdempotencyRepository(store)
	cartRepo := repository.NewMemoryCartRepository(cfg.Cart.TTL)

	// Initialize services
	orderService := service.NewOrderService(ledgerRepo, rosterRepo, cartRepo, cfg.Orders.ConflictRetries)
	cartService := service.NewCartService(cartRepo, catalogRepo, rosterRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	customerService := service.NewCustomerService(catalogRepo)
	rosterService := service.NewRosterService(rosterRepo)
	adminService := service.NewAdminService(rosterRepo, catalogRepo, ledgerRepo)
	overviewService := service.NewOverviewService(rosterRepo, catalogRepo, ledgerRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Cart:        handler.NewCartHandler(cartService),
		Order:       handler.NewOrderHandler(orderService),
		Catalog:     handler.NewCatalogHandler(catalogService),
		Customer:    handler.NewCustomerHandler(customerService),
		Salesperson: handler.NewSalespersonHandler(rosterService),
		Admin:       handler.NewAdminHandler(adminService, overviewService, cfg.Upload.MaxSize),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s, store backend: %s", cfg.App.Env, cfg.Store.Backend)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openStore picks the tabular-store backend from configuration. Both
// backends satisfy the same contract, so everything above this point
// is backend-agnostic.
func openStore(cfg *config.Config) (domainRepo.TabularStore, error) {
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
	default:
		return sheetstore.New(cfg.Store.WorkbookPath), nil
	}
}

package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ordersheet/ordersheet-api/internal/config"
	domainRepo "github.com/ordersheet/ordersheet-api/internal/domain/repository"
	"github.com/ordersheet/ordersheet-api/internal/presentation/http/handler"
	"github.com/ordersheet/ordersheet-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Cart        *handler.CartHandler
	Order       *handler.OrderHandler
	Catalog     *handler.CatalogHandler
	Customer    *handler.CustomerHandler
	Salesperson *handler.SalespersonHandler
	Admin       *handler.AdminHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	router.Use(middleware.Session())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-session rate limiter
		rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerRoutes(v1, h, deps)
	}

	return router
}

func registerRoutes(rg *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	// Session cart
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:index", h.Cart.UpdateItem)
		cart.DELETE("/items/:index", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.Clear)
	}

	// Orders
	orders := rg.Group("/orders")
	{
		orders.POST("", idempotent, h.Order.Submit)
		orders.GET("", h.Order.List)
		orders.GET("/:bill_no", h.Order.Get)
	}

	// Master data
	rg.GET("/products", h.Catalog.ListProducts)
	rg.GET("/products/brands", h.Catalog.ListBrands)
	rg.GET("/customers", h.Customer.List)
	rg.GET("/salespersons", h.Salesperson.List)

	// Administration
	admin := rg.Group("/admin")
	{
		admin.POST("/import/customers", h.Admin.ImportCustomers)
		admin.POST("/import/products", h.Admin.ImportProducts)
		admin.POST("/import/salespersons", h.Admin.ImportSalespersons)
		admin.GET("/export/ledger", h.Admin.ExportLedger)
		admin.GET("/overview", h.Admin.Overview)
	}
}

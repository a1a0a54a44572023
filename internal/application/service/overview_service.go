package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/domain/repository"
)

// OverviewService aggregates the three backing tables for the admin
// overview panel
type OverviewService struct {
	rosterRepo  repository.RosterRepository
	catalogRepo repository.CatalogRepository
	ledgerRepo  repository.LedgerRepository
}

// NewOverviewService creates a new overview service
func NewOverviewService(
	rosterRepo repository.RosterRepository,
	catalogRepo repository.CatalogRepository,
	ledgerRepo repository.LedgerRepository,
) *OverviewService {
	return &OverviewService{
		rosterRepo:  rosterRepo,
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// Overview summarizes the data set.
type Overview struct {
	SalespersonCount int                `json:"salesperson_count"`
	CustomerCount    int                `json:"customer_count"`
	ProductCount     int                `json:"product_count"`
	LedgerRowCount   int                `json:"ledger_row_count"`
	RecentRows       []entity.LedgerRow `json:"recent_rows"`
}

const recentRowLimit = 20

// GetOverview loads all tables concurrently and returns counts plus the
// most recent ledger rows.
func (s *OverviewService) GetOverview(ctx context.Context) (*Overview, error) {
	var (
		salespersons []entity.Salesperson
		customers    []entity.Customer
		products     []entity.Product
		ledgerRows   []entity.LedgerRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		salespersons, err = s.rosterRepo.Salespersons(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.catalogRepo.Customers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.catalogRepo.Products(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ledgerRows, _, err = s.ledgerRepo.Snapshot(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recent := ledgerRows
	if len(recent) > recentRowLimit {
		recent = recent[len(recent)-recentRowLimit:]
	}

	return &Overview{
		SalespersonCount: len(salespersons),
		CustomerCount:    len(customers),
		ProductCount:     len(products),
		LedgerRowCount:   len(ledgerRows),
		RecentRows:       recent,
	}, nil
}

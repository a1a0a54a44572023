package service

import (
	"context"
	"sort"
	"strings"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/domain/repository"
	"github.com/ordersheet/ordersheet-api/pkg/pagination"
)

// CatalogService handles product catalog queries
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ProductFilterParams narrows product listings.
type ProductFilterParams struct {
	Search     string
	Brands     []string
	Pagination *pagination.PaginationParams
}

// ListProducts returns catalog products matched case-insensitively
// against name or id, optionally restricted to a brand set.
func (s *CatalogService) ListProducts(ctx context.Context, params *ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, err := s.catalogRepo.Products(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(params.Search))
	brandSet := make(map[string]bool, len(params.Brands))
	for _, b := range params.Brands {
		if b = strings.TrimSpace(b); b != "" {
			brandSet[b] = true
		}
	}

	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.ID), search) {
			continue
		}
		if len(brandSet) > 0 && !brandSet[p.Brand] {
			continue
		}
		filtered = append(filtered, p)
	}

	items, pag := pagination.Slice(filtered, params.Pagination)
	return pagination.NewPaginatedResult(items, pag), nil
}

// Brands returns the distinct product brands, sorted.
func (s *CatalogService) Brands(ctx context.Context) ([]string, error) {
	products, err := s.catalogRepo.Products(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var brands []string
	for _, p := range products {
		if p.Brand == "" || seen[p.Brand] {
			continue
		}
		seen[p.Brand] = true
		brands = append(brands, p.Brand)
	}
	sort.Strings(brands)
	return brands, nil
}

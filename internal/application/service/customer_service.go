package service

import (
	"context"
	"strings"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/domain/repository"
)

// CustomerService handles customer lookups for the order form
type CustomerService struct {
	catalogRepo repository.CatalogRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(catalogRepo repository.CatalogRepository) *CustomerService {
	return &CustomerService{catalogRepo: catalogRepo}
}

// ListCustomers returns customers, optionally restricted to those
// affiliated with a salesperson (matched by trimmed name) and matched
// case-insensitively against id or name.
func (s *CustomerService) ListCustomers(ctx context.Context, salespersonName, search string) ([]entity.Customer, error) {
	customers, err := s.catalogRepo.Customers(ctx)
	if err != nil {
		return nil, err
	}

	salespersonName = strings.TrimSpace(salespersonName)
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if salespersonName != "" && c.SalespersonName != salespersonName {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.ID), search) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered, nil
}

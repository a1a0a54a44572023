package repository

import (
	"context"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
)

// CatalogRepository defines customer and product table access. Both are
// read-only inputs; the Replace methods back the bulk-overwrite
// maintenance path (Excel upload and CLI import).
type CatalogRepository interface {
	Customers(ctx context.Context) ([]entity.Customer, error)
	Products(ctx context.Context) ([]entity.Product, error)
	ReplaceCustomers(ctx context.Context, customers []entity.Customer) error
	ReplaceProducts(ctx context.Context, products []entity.Product) error
}

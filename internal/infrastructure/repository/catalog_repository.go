package repository

import (
	"context"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/domain/repository"
)

type catalogRepository struct {
	store repository.TabularStore
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(store repository.TabularStore) repository.CatalogRepository {
	return &catalogRepository{store: store}
}

func (r *catalogRepository) Customers(ctx context.Context) ([]entity.Customer, error) {
	rows, _, err := r.store.Read(ctx, entity.TableCustomers)
	if err != nil {
		return nil, err
	}

	customers := make([]entity.Customer, 0, len(rows))
	for _, row := range rows {
		c := entity.CustomerFromSheet(row)
		if c.ID == "" && c.Name == "" {
			continue
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *catalogRepository) Products(ctx context.Context) ([]entity.Product, error) {
	rows, _, err := r.store.Read(ctx, entity.TableProducts)
	if err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		p := entity.ProductFromSheet(row)
		if p.ID == "" && p.Name == "" {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *catalogRepository) ReplaceCustomers(ctx context.Context, customers []entity.Customer) error {
	rows := make([]entity.SheetRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, c.SheetRow())
	}
	return r.store.Write(ctx, entity.TableCustomers, rows)
}

func (r *catalogRepository) ReplaceProducts(ctx context.Context, products []entity.Product) error {
	rows := make([]entity.SheetRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, p.SheetRow())
	}
	return r.store.Write(ctx, entity.TableProducts, rows)
}

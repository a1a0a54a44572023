package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/pkg/pagination"
)

func catalogWithProducts() *stubCatalogRepo {
	return &stubCatalogRepo{products: []entity.Product{
		{ID: "P1001", Name: "Vitamin C 500mg", Brand: "Sunrise"},
		{ID: "P1002", Name: "Ibuprofen 200mg", Brand: "Sunrise"},
		{ID: "P2001", Name: "Saline Nasal Spray", Brand: "ClearAir"},
		{ID: "P3001", Name: "Bandage Roll", Brand: "MediWrap"},
	}}
}

func TestListProductsSearchMatchesNameAndID(t *testing.T) {
	svc := NewCatalogService(catalogWithProducts())

	res, err := svc.ListProducts(context.Background(), &ProductFilterParams{
		Search:     "vitamin",
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	require.Equal(t, "P1001", res.Items[0].ID)

	res, err = svc.ListProducts(context.Background(), &ProductFilterParams{
		Search:     "p20",
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	require.Equal(t, "P2001", res.Items[0].ID)
}

func TestListProductsBrandFilter(t *testing.T) {
	svc := NewCatalogService(catalogWithProducts())

	res, err := svc.ListProducts(context.Background(), &ProductFilterParams{
		Brands:     []string{"Sunrise"},
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	for _, p := range res.Items {
		require.Equal(t, "Sunrise", p.Brand)
	}
}

func TestListProductsPagination(t *testing.T) {
	svc := NewCatalogService(catalogWithProducts())

	res, err := svc.ListProducts(context.Background(), &ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: 2, PerPage: 3},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	require.Equal(t, int64(4), res.Pagination.Total)
}

func TestBrandsDistinctSorted(t *testing.T) {
	svc := NewCatalogService(catalogWithProducts())

	brands, err := svc.Brands(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"ClearAir", "MediWrap", "Sunrise"}, brands)
}

func TestListCustomersBySalesperson(t *testing.T) {
	repo := &stubCatalogRepo{customers: []entity.Customer{
		{ID: "C001", Name: "Harbor Pharmacy", SalespersonName: "Alice Tan"},
		{ID: "C002", Name: "Lakeside Clinic", SalespersonName: "Alice Tan"},
		{ID: "C003", Name: "Summit Drugstore", SalespersonName: "Ben Ortiz"},
	}}
	svc := NewCustomerService(repo)

	customers, err := svc.ListCustomers(context.Background(), " Alice Tan ", "")
	require.NoError(t, err)
	require.Len(t, customers, 2)

	customers, err = svc.ListCustomers(context.Background(), "Alice Tan", "lakeside")
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, "C002", customers[0].ID)
}

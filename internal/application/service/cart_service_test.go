package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/pkg/apperror"
)

type stubCatalogRepo struct {
	customers []entity.Customer
	products  []entity.Product
	err       error
}

func (s *stubCatalogRepo) Customers(_ context.Context) ([]entity.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.customers, nil
}

func (s *stubCatalogRepo) Products(_ context.Context) ([]entity.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubCatalogRepo) ReplaceCustomers(_ context.Context, customers []entity.Customer) error {
	s.customers = customers
	return nil
}

func (s *stubCatalogRepo) ReplaceProducts(_ context.Context, products []entity.Product) error {
	s.products = products
	return nil
}

func testCatalog() *stubCatalogRepo {
	return &stubCatalogRepo{
		customers: []entity.Customer{
			{ID: "C001", Name: "Harbor Pharmacy", SalespersonName: "Alice Tan"},
		},
		products: []entity.Product{
			{ID: "P1", Name: "Vitamin C", Brand: "Sunrise"},
		},
	}
}

func TestAddItemResolvesNames(t *testing.T) {
	cartRepo := &stubCartRepo{}
	roster := &stubRosterRepo{salespersons: []entity.Salesperson{{Code: "6", Name: "Alice Tan"}}}
	svc := NewCartService(cartRepo, testCatalog(), roster)

	cart, err := svc.AddItem(context.Background(), &AddItemInput{
		SessionID:       "s1",
		SalespersonCode: "06",
		CustomerID:      "C001",
		ProductID:       "P1",
		OrderQuantity:   10,
		BonusQuantity:   2,
	})
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)

	line := cart.Lines[0]
	require.Equal(t, "Alice Tan", line.SalespersonName)
	require.Equal(t, "Harbor Pharmacy", line.CustomerName)
	require.Equal(t, "Vitamin C", line.ProductName)
	require.Equal(t, "Sunrise", line.Brand)
	require.Equal(t, 10, line.OrderQuantity)
	require.Equal(t, 2, line.BonusQuantity)
}

func TestAddItemRejectsZeroQuantities(t *testing.T) {
	svc := NewCartService(&stubCartRepo{}, testCatalog(), &stubRosterRepo{})

	_, err := svc.AddItem(context.Background(), &AddItemInput{
		SessionID:  "s1",
		CustomerID: "C001",
		ProductID:  "P1",
	})
	require.Error(t, err)
	require.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestAddItemRejectsNegativeQuantities(t *testing.T) {
	svc := NewCartService(&stubCartRepo{}, testCatalog(), &stubRosterRepo{})

	_, err := svc.AddItem(context.Background(), &AddItemInput{
		SessionID:     "s1",
		CustomerID:    "C001",
		ProductID:     "P1",
		OrderQuantity: -1,
	})
	require.Error(t, err)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := NewCartService(&stubCartRepo{}, testCatalog(), &stubRosterRepo{})

	_, err := svc.AddItem(context.Background(), &AddItemInput{
		SessionID:     "s1",
		CustomerID:    "C001",
		ProductID:     "nope",
		OrderQuantity: 1,
	})
	require.Error(t, err)
	require.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateItemAllowsBothZero(t *testing.T) {
	cartRepo := &stubCartRepo{lines: []entity.CartLine{
		{ProductID: "P1", OrderQuantity: 5, BonusQuantity: 1},
	}}
	svc := NewCartService(cartRepo, testCatalog(), &stubRosterRepo{})

	cart, err := svc.UpdateItem("s1", 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, cart.Lines[0].OrderQuantity)
	require.Equal(t, 0, cart.Lines[0].BonusQuantity)
}

func TestUpdateItemBadIndex(t *testing.T) {
	svc := NewCartService(&stubCartRepo{}, testCatalog(), &stubRosterRepo{})

	_, err := svc.UpdateItem("s1", 3, 1, 0)
	require.Error(t, err)
}

func TestRemoveItem(t *testing.T) {
	cartRepo := &stubCartRepo{lines: []entity.CartLine{
		{ProductID: "P1"},
		{ProductID: "P2"},
	}}
	svc := NewCartService(cartRepo, testCatalog(), &stubRosterRepo{})

	cart, err := svc.RemoveItem("s1", 0)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, "P2", cart.Lines[0].ProductID)
}

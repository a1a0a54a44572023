package service

import (
	"context"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/domain/repository"
	"github.com/ordersheet/ordersheet-api/pkg/apperror"
)

// CartService handles the session-scoped pending order list
type CartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	rosterRepo  repository.RosterRepository
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo repository.CartRepository,
	catalogRepo repository.CatalogRepository,
	rosterRepo repository.RosterRepository,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		rosterRepo:  rosterRepo,
	}
}

// AddItemInput represents the add-to-cart input
type AddItemInput struct {
	SessionID       string
	SalespersonCode string
	CustomerID      string
	ProductID       string
	OrderQuantity   int
	BonusQuantity   int
}

// AddItem resolves the selected customer and product and appends a line
// to the session cart. Quantities must be non-negative and at least one
// of them positive; a line that would persist nothing is rejected here
// rather than silently dropped later.
func (s *CartService) AddItem(ctx context.Context, input *AddItemInput) (*entity.Cart, error) {
	if input.OrderQuantity < 0 || input.BonusQuantity < 0 {
		return nil, apperror.NewBadRequestError("Quantities must not be negative")
	}
	if input.OrderQuantity == 0 && input.BonusQuantity == 0 {
		return nil, apperror.NewBadRequestError("Order or bonus quantity is required")
	}

	product, err := s.findProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	customer, err := s.findCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	s.cartRepo.Add(input.SessionID, entity.CartLine{
		SalespersonName: s.salespersonName(ctx, input.SalespersonCode),
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		ProductID:       product.ID,
		ProductName:     product.Name,
		Brand:           product.Brand,
		OrderQuantity:   input.OrderQuantity,
		BonusQuantity:   input.BonusQuantity,
	})

	return s.cartRepo.Get(input.SessionID), nil
}

// GetCart returns the session's cart.
func (s *CartService) GetCart(sessionID string) *entity.Cart {
	return s.cartRepo.Get(sessionID)
}

// UpdateItem changes the quantities of one cart line. Setting both to
// zero is allowed; the line just produces no ledger rows on submit,
// matching the editable-grid behavior of the form.
func (s *CartService) UpdateItem(sessionID string, index, orderQty, bonusQty int) (*entity.Cart, error) {
	if orderQty < 0 || bonusQty < 0 {
		return nil, apperror.NewBadRequestError("Quantities must not be negative")
	}
	if err := s.cartRepo.Update(sessionID, index, orderQty, bonusQty); err != nil {
		return nil, err
	}
	return s.cartRepo.Get(sessionID), nil
}

// RemoveItem deletes one cart line.
func (s *CartService) RemoveItem(sessionID string, index int) (*entity.Cart, error) {
	if err := s.cartRepo.Remove(sessionID, index); err != nil {
		return nil, err
	}
	return s.cartRepo.Get(sessionID), nil
}

// ClearCart empties the session's cart.
func (s *CartService) ClearCart(sessionID string) {
	s.cartRepo.Clear(sessionID)
}

func (s *CartService) findProduct(ctx context.Context, id string) (*entity.Product, error) {
	products, err := s.catalogRepo.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Product")
}

func (s *CartService) findCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	customers, err := s.catalogRepo.Customers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Customer")
}

// salespersonName is display-only on cart lines; an unknown code keeps
// the raw value instead of failing the add.
func (s *CartService) salespersonName(ctx context.Context, rawCode string) string {
	code := NormalizeSalespersonCode(rawCode)
	salespersons, err := s.rosterRepo.Salespersons(ctx)
	if err != nil {
		return rawCode
	}
	for _, sp := range salespersons {
		if NormalizeSalespersonCode(sp.Code) == code {
			return sp.Name
		}
	}
	return rawCode
}

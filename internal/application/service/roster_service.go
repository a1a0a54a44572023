package service

import (
	"context"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/domain/repository"
)

// RosterService handles the salesperson roster
type RosterService struct {
	rosterRepo repository.RosterRepository
}

// NewRosterService creates a new roster service
func NewRosterService(rosterRepo repository.RosterRepository) *RosterService {
	return &RosterService{rosterRepo: rosterRepo}
}

// ListSalespersons returns the roster with codes normalized to the
// 2-digit form embedded in bill numbers.
func (s *RosterService) ListSalespersons(ctx context.Context) ([]entity.Salesperson, error) {
	salespersons, err := s.rosterRepo.Salespersons(ctx)
	if err != nil {
		return nil, err
	}
	for i := range salespersons {
		salespersons[i].Code = NormalizeSalespersonCode(salespersons[i].Code)
	}
	return salespersons, nil
}

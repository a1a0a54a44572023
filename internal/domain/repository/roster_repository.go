package repository

import (
	"context"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
)

// RosterRepository defines salesperson roster access. The roster is a
// read-only input for the service; Replace exists for the maintenance
// path (seeding and bulk import) only.
type RosterRepository interface {
	Salespersons(ctx context.Context) ([]entity.Salesperson, error)
	Replace(ctx context.Context, salespersons []entity.Salesperson) error
}

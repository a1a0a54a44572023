package repository

import (
	"context"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/domain/repository"
)

type rosterRepository struct {
	store repository.TabularStore
}

// NewRosterRepository creates a new roster repository
func NewRosterRepository(store repository.TabularStore) repository.RosterRepository {
	return &rosterRepository{store: store}
}

func (r *rosterRepository) Salespersons(ctx context.Context) ([]entity.Salesperson, error) {
	rows, _, err := r.store.Read(ctx, entity.TableSalespersons)
	if err != nil {
		return nil, err
	}

	salespersons := make([]entity.Salesperson, 0, len(rows))
	for _, row := range rows {
		sp := entity.SalespersonFromSheet(row)
		if sp.Code == "" && sp.Name == "" {
			continue
		}
		salespersons = append(salespersons, sp)
	}
	return salespersons, nil
}

func (r *rosterRepository) Replace(ctx context.Context, salespersons []entity.Salesperson) error {
	rows := make([]entity.SheetRow, 0, len(salespersons))
	for _, sp := range salespersons {
		rows = append(rows, sp.SheetRow())
	}
	return r.store.Write(ctx, entity.TableSalespersons, rows)
}

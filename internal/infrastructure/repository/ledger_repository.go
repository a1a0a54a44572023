package repository

import (
	"context"
	"sync"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/domain/repository"
	"github.com/ordersheet/ordersheet-api/pkg/apperror"
)

type ledgerRepository struct {
	store repository.TabularStore

	// Serializes appends within this process; the re-read plus WriteIf
	// below covers writers in other processes.
	mu sync.Mutex
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(store repository.TabularStore) repository.LedgerRepository {
	return &ledgerRepository{store: store}
}

func (r *ledgerRepository) Snapshot(ctx context.Context) ([]entity.LedgerRow, int64, error) {
	sheetRows, version, err := r.store.Read(ctx, entity.TableOrderLedger)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]entity.LedgerRow, 0, len(sheetRows))
	for _, row := range sheetRows {
		rows = append(rows, entity.LedgerRowFromSheet(row))
	}
	return rows, version, nil
}

func (r *ledgerRepository) Append(ctx context.Context, rows []entity.LedgerRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-read immediately before writing. A duplicate bill number means
	// a concurrent submission computed the same sequence from an older
	// snapshot; surfacing the conflict here lets the caller recompute
	// instead of silently clobbering the other write.
	existing, version, err := r.store.Read(ctx, entity.TableOrderLedger)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		seen[row.BillNo] = true
	}
	for _, row := range existing {
		if seen[row["BillNo"]] {
			return apperror.ErrWriteConflict
		}
	}

	merged := make([]entity.SheetRow, 0, len(existing)+len(rows))
	merged = append(merged, existing...)
	for _, row := range rows {
		merged = append(merged, row.SheetRow())
	}

	return r.store.WriteIf(ctx, entity.TableOrderLedger, merged, version)
}

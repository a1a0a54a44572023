package repository

import (
	"context"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
)

// LedgerRepository defines order-ledger data access. The ledger is
// append-only; rows are never updated or deleted through this interface.
type LedgerRepository interface {
	// Snapshot returns all ledger rows in persisted order plus the
	// table version the snapshot was taken at.
	Snapshot(ctx context.Context) ([]entity.LedgerRow, int64, error)

	// Append re-reads the ledger immediately before writing, verifies
	// that none of the new rows' bill numbers already exist, and
	// persists the merged table at the freshly observed version. It
	// fails with apperror.ErrWriteConflict when either check trips so
	// the caller can recompute the bill number and retry.
	Append(ctx context.Context, rows []entity.LedgerRow) error
}

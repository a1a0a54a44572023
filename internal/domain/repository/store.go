package repository

import (
	"context"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
)

// TabularStore is the external spreadsheet-like store. Tables are read
// and written wholesale; there is no partial-row append primitive.
//
// Read returns the full ordered contents of a table together with a
// monotonically increasing version number. The version acts as an
// optimistic-concurrency token: WriteIf refuses the overwrite with
// apperror.ErrWriteConflict when the table has moved past the expected
// version, so concurrent read-then-overwrite writers surface as a
// detectable, retryable conflict instead of silently losing rows.
//
// A missing table is not an error: Read returns no rows and version 0.
// Backend failures (I/O, network, permission) surface as
// apperror.ErrStoreUnavailable-coded errors.
type TabularStore interface {
	Read(ctx context.Context, table string) ([]entity.SheetRow, int64, error)
	Write(ctx context.Context, table string, rows []entity.SheetRow) error
	WriteIf(ctx context.Context, table string, rows []entity.SheetRow, expectedVersion int64) error
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/pkg/apperror"
)

// fakeStore is an in-memory TabularStore with the same versioning
// contract as the real backends.
type fakeStore struct {
	tables   map[string][]entity.SheetRow
	versions map[string]int64
	readErr  error
	writeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables:   make(map[string][]entity.SheetRow),
		versions: make(map[string]int64),
	}
}

func (s *fakeStore) Read(_ context.Context, table string) ([]entity.SheetRow, int64, error) {
	if s.readErr != nil {
		return nil, 0, s.readErr
	}
	rows := make([]entity.SheetRow, len(s.tables[table]))
	copy(rows, s.tables[table])
	return rows, s.versions[table], nil
}

func (s *fakeStore) Write(_ context.Context, table string, rows []entity.SheetRow) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.tables[table] = rows
	s.versions[table]++
	return nil
}

func (s *fakeStore) WriteIf(_ context.Context, table string, rows []entity.SheetRow, expectedVersion int64) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	if s.versions[table] != expectedVersion {
		return apperror.ErrWriteConflict
	}
	s.tables[table] = rows
	s.versions[table]++
	return nil
}

func ledgerRow(billNo, prodName string, qty int) entity.LedgerRow {
	return entity.LedgerRow{
		BillDate:   "20240315",
		BillNo:     billNo,
		PersonID:   "06",
		PersonName: "Alice Tan",
		CustID:     "C001",
		ProdID:     "P1",
		ProdName:   prodName,
		Quantity:   qty,
	}
}

func TestLedgerAppendPersistsRows(t *testing.T) {
	store := newFakeStore()
	repo := NewLedgerRepository(store)
	ctx := context.Background()

	err := repo.Append(ctx, []entity.LedgerRow{
		ledgerRow("0620240315001", "Vitamin C", 10),
		ledgerRow("0620240315001", "Vitamin C (bonus)", 2),
	})
	require.NoError(t, err)

	rows, version, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), version)
	require.Len(t, rows, 2)
	require.Equal(t, "Vitamin C", rows[0].ProdName)
	require.Equal(t, 10, rows[0].Quantity)
	require.Equal(t, "Vitamin C (bonus)", rows[1].ProdName)
}

func TestLedgerAppendKeepsExistingRows(t *testing.T) {
	store := newFakeStore()
	repo := NewLedgerRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, []entity.LedgerRow{ledgerRow("0620240315001", "A", 1)}))
	require.NoError(t, repo.Append(ctx, []entity.LedgerRow{ledgerRow("0620240315002", "B", 2)}))

	rows, _, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "0620240315001", rows[0].BillNo)
	require.Equal(t, "0620240315002", rows[1].BillNo)
}

func TestLedgerAppendRejectsDuplicateBillNo(t *testing.T) {
	store := newFakeStore()
	repo := NewLedgerRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, []entity.LedgerRow{ledgerRow("0620240315001", "A", 1)}))

	err := repo.Append(ctx, []entity.LedgerRow{ledgerRow("0620240315001", "B", 2)})
	require.ErrorIs(t, err, apperror.ErrWriteConflict)

	// The losing append changed nothing.
	rows, _, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "A", rows[0].ProdName)
}

func TestLedgerAppendPropagatesStoreErrors(t *testing.T) {
	store := newFakeStore()
	store.writeErr = apperror.ErrStoreUnavailable
	repo := NewLedgerRepository(store)

	err := repo.Append(context.Background(), []entity.LedgerRow{ledgerRow("0620240315001", "A", 1)})
	require.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}

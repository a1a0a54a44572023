package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/pkg/apperror"
	"github.com/ordersheet/ordersheet-api/pkg/pagination"
)

type stubLedgerRepo struct {
	rows        []entity.LedgerRow
	version     int64
	snapshotErr error
	appendErr   error
	// conflictsLeft makes the first N Append calls fail with a write
	// conflict before succeeding, simulating a losing race.
	conflictsLeft int
	appends       [][]entity.LedgerRow
}

func (s *stubLedgerRepo) Snapshot(_ context.Context) ([]entity.LedgerRow, int64, error) {
	if s.snapshotErr != nil {
		return nil, 0, s.snapshotErr
	}
	rows := make([]entity.LedgerRow, len(s.rows))
	copy(rows, s.rows)
	return rows, s.version, nil
}

func (s *stubLedgerRepo) Append(_ context.Context, rows []entity.LedgerRow) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	if s.conflictsLeft > 0 {
		s.conflictsLeft--
		// The winning writer took this bill number.
		s.rows = append(s.rows, entity.LedgerRow{BillNo: rows[0].BillNo})
		s.version++
		return apperror.ErrWriteConflict
	}
	s.appends = append(s.appends, rows)
	s.rows = append(s.rows, rows...)
	s.version++
	return nil
}

type stubRosterRepo struct {
	salespersons []entity.Salesperson
	err          error
}

func (s *stubRosterRepo) Salespersons(_ context.Context) ([]entity.Salesperson, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.salespersons, nil
}

func (s *stubRosterRepo) Replace(_ context.Context, salespersons []entity.Salesperson) error {
	s.salespersons = salespersons
	return nil
}

type stubCartRepo struct {
	lines   []entity.CartLine
	cleared bool
}

func (s *stubCartRepo) Get(sessionID string) *entity.Cart {
	lines := make([]entity.CartLine, len(s.lines))
	copy(lines, s.lines)
	return &entity.Cart{SessionID: sessionID, Lines: lines}
}

func (s *stubCartRepo) Add(_ string, line entity.CartLine) {
	s.lines = append(s.lines, line)
}

func (s *stubCartRepo) Update(_ string, index, orderQty, bonusQty int) error {
	if index < 0 || index >= len(s.lines) {
		return apperror.ErrNotFound
	}
	s.lines[index].OrderQuantity = orderQty
	s.lines[index].BonusQuantity = bonusQty
	return nil
}

func (s *stubCartRepo) Remove(_ string, index int) error {
	if index < 0 || index >= len(s.lines) {
		return apperror.ErrNotFound
	}
	s.lines = append(s.lines[:index], s.lines[index+1:]...)
	return nil
}

func (s *stubCartRepo) Clear(_ string) {
	s.lines = nil
	s.cleared = true
}

func testDate() time.Time {
	return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
}

func TestSubmitOrderExpandsBonusLines(t *testing.T) {
	ledger := &stubLedgerRepo{}
	roster := &stubRosterRepo{salespersons: []entity.Salesperson{{Code: "6", Name: "Alice Tan"}}}
	cart := &stubCartRepo{lines: []entity.CartLine{
		{CustomerID: "C001", ProductID: "P1", ProductName: "Vitamin C", OrderQuantity: 10, BonusQuantity: 2},
		{CustomerID: "C001", ProductID: "P2", ProductName: "Ibuprofen", OrderQuantity: 5},
	}}
	svc := NewOrderService(ledger, roster, cart, 3)

	res, err := svc.SubmitOrder(context.Background(), &SubmitOrderInput{
		SessionID:       "s1",
		SalespersonCode: "6",
		OrderDate:       testDate(),
	})
	require.NoError(t, err)
	require.Equal(t, "0620240315001", res.BillNo)
	require.Len(t, res.Rows, 3)

	require.Equal(t, "Vitamin C", res.Rows[0].ProdName)
	require.Equal(t, 10, res.Rows[0].Quantity)
	require.Equal(t, "Vitamin C (bonus)", res.Rows[1].ProdName)
	require.Equal(t, 2, res.Rows[1].Quantity)
	require.Equal(t, "Ibuprofen", res.Rows[2].ProdName)

	// Every row carries the same bill identity and the roster name.
	for _, row := range res.Rows {
		require.Equal(t, "0620240315001", row.BillNo)
		require.Equal(t, "20240315", row.BillDate)
		require.Equal(t, "06", row.PersonID)
		require.Equal(t, "Alice Tan", row.PersonName)
	}

	require.True(t, cart.cleared)
}

func TestSubmitOrderUnknownCodeFallsBackToRawName(t *testing.T) {
	ledger := &stubLedgerRepo{}
	roster := &stubRosterRepo{}
	cart := &stubCartRepo{lines: []entity.CartLine{
		{CustomerID: "C001", ProductID: "P1", ProductName: "Vitamin C", OrderQuantity: 1},
	}}
	svc := NewOrderService(ledger, roster, cart, 0)

	res, err := svc.SubmitOrder(context.Background(), &SubmitOrderInput{
		SessionID:       "s1",
		SalespersonCode: " AB ",
		OrderDate:       testDate(),
	})
	require.NoError(t, err)
	require.Equal(t, "AB", res.Rows[0].PersonID)
	require.Equal(t, "AB", res.Rows[0].PersonName)
}

func TestSubmitOrderEmptyCart(t *testing.T) {
	svc := NewOrderService(&stubLedgerRepo{}, &stubRosterRepo{}, &stubCartRepo{}, 3)

	_, err := svc.SubmitOrder(context.Background(), &SubmitOrderInput{
		SessionID:       "s1",
		SalespersonCode: "6",
		OrderDate:       testDate(),
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, 400, appErr.Code)
}

func TestSubmitOrderAllZeroQuantities(t *testing.T) {
	cart := &stubCartRepo{lines: []entity.CartLine{
		{CustomerID: "C001", ProductID: "P1", ProductName: "Vitamin C"},
	}}
	svc := NewOrderService(&stubLedgerRepo{}, &stubRosterRepo{}, cart, 3)

	_, err := svc.SubmitOrder(context.Background(), &SubmitOrderInput{
		SessionID:       "s1",
		SalespersonCode: "6",
		OrderDate:       testDate(),
	})
	require.Error(t, err)
	require.False(t, cart.cleared)
}

func TestSubmitOrderRetriesAfterConflict(t *testing.T) {
	ledger := &stubLedgerRepo{conflictsLeft: 2}
	cart := &stubCartRepo{lines: []entity.CartLine{
		{CustomerID: "C001", ProductID: "P1", ProductName: "Vitamin C", OrderQuantity: 1},
	}}
	svc := NewOrderService(ledger, &stubRosterRepo{}, cart, 3)

	res, err := svc.SubmitOrder(context.Background(), &SubmitOrderInput{
		SessionID:       "s1",
		SalespersonCode: "6",
		OrderDate:       testDate(),
	})
	require.NoError(t, err)
	// Two losing attempts consumed 001 and 002.
	require.Equal(t, "0620240315003", res.BillNo)
	require.True(t, cart.cleared)
}

func TestSubmitOrderGivesUpAfterMaxRetries(t *testing.T) {
	ledger := &stubLedgerRepo{conflictsLeft: 10}
	cart := &stubCartRepo{lines: []entity.CartLine{
		{CustomerID: "C001", ProductID: "P1", ProductName: "Vitamin C", OrderQuantity: 1},
	}}
	svc := NewOrderService(ledger, &stubRosterRepo{}, cart, 2)

	_, err := svc.SubmitOrder(context.Background(), &SubmitOrderInput{
		SessionID:       "s1",
		SalespersonCode: "6",
		OrderDate:       testDate(),
	})
	require.ErrorIs(t, err, apperror.ErrWriteConflict)
	require.False(t, cart.cleared)
}

func TestSubmitOrderStoreFailurePreservesCart(t *testing.T) {
	ledger := &stubLedgerRepo{appendErr: apperror.ErrStoreUnavailable}
	cart := &stubCartRepo{lines: []entity.CartLine{
		{CustomerID: "C001", ProductID: "P1", ProductName: "Vitamin C", OrderQuantity: 1},
	}}
	svc := NewOrderService(ledger, &stubRosterRepo{}, cart, 3)

	_, err := svc.SubmitOrder(context.Background(), &SubmitOrderInput{
		SessionID:       "s1",
		SalespersonCode: "6",
		OrderDate:       testDate(),
	})
	require.Error(t, err)
	require.True(t, apperror.IsStoreUnavailable(err))
	require.False(t, cart.cleared)
	require.Len(t, cart.lines, 1)
}

func TestListOrdersFiltersAndSorts(t *testing.T) {
	ledger := &stubLedgerRepo{rows: []entity.LedgerRow{
		{BillNo: "0620240314001", BillDate: "20240314", PersonID: "06", ProdName: "A"},
		{BillNo: "0620240315001", BillDate: "20240315", PersonID: "06", ProdName: "B"},
		{BillNo: "0620240315001", BillDate: "20240315", PersonID: "06", ProdName: "B bonus"},
		{BillNo: "0720240315001", BillDate: "20240315", PersonID: "07", ProdName: "C"},
	}}
	svc := NewOrderService(ledger, &stubRosterRepo{}, &stubCartRepo{}, 0)

	res, err := svc.ListOrders(context.Background(), &OrderFilterParams{
		PersonID:   "06",
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	// Newest document first, line order within the bill preserved.
	require.Equal(t, "B", res.Items[0].ProdName)
	require.Equal(t, "B bonus", res.Items[1].ProdName)
	require.Equal(t, "A", res.Items[2].ProdName)
}

func TestListOrdersNewestFirstAcrossSalespersons(t *testing.T) {
	// Person 07's document sorts above person 06's as a raw string, but
	// 06's is a day newer and must come first.
	ledger := &stubLedgerRepo{rows: []entity.LedgerRow{
		{BillNo: "0720240314001", BillDate: "20240314", PersonID: "07", ProdName: "older"},
		{BillNo: "0620240315001", BillDate: "20240315", PersonID: "06", ProdName: "newer"},
	}}
	svc := NewOrderService(ledger, &stubRosterRepo{}, &stubCartRepo{}, 0)

	res, err := svc.ListOrders(context.Background(), &OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	require.Equal(t, "newer", res.Items[0].ProdName)
	require.Equal(t, "older", res.Items[1].ProdName)
}

func TestGetOrderNotFound(t *testing.T) {
	svc := NewOrderService(&stubLedgerRepo{}, &stubRosterRepo{}, &stubCartRepo{}, 0)

	_, err := svc.GetOrder(context.Background(), "0620240315001")
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, 404, appErr.Code)
}

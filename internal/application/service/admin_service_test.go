package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
)

// buildWorkbook makes a single-sheet workbook with a header and the
// given data rows, the shape the import endpoints receive.
func buildWorkbook(t *testing.T, header []string, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &cells))

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, addr, &cells))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestImportCustomers(t *testing.T) {
	catalog := &stubCatalogRepo{}
	svc := NewAdminService(&stubRosterRepo{}, catalog, &stubLedgerRepo{})

	buf := buildWorkbook(t,
		[]string{"ID", "Name", "Salesperson"},
		[][]string{
			{"C001", "Harbor Pharmacy", "Alice Tan"},
			{"C002", "Lakeside Clinic"},
			{"", "", ""}, // trailing blank row from the spreadsheet
		})

	count, err := svc.ImportCustomers(context.Background(), buf)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Len(t, catalog.customers, 2)
	require.Equal(t, "Alice Tan", catalog.customers[0].SalespersonName)
	require.Empty(t, catalog.customers[1].SalespersonName)
}

func TestImportProducts(t *testing.T) {
	catalog := &stubCatalogRepo{}
	svc := NewAdminService(&stubRosterRepo{}, catalog, &stubLedgerRepo{})

	buf := buildWorkbook(t,
		[]string{"ID", "Name", "Brand"},
		[][]string{
			{"P1001", "Vitamin C", "Sunrise"},
			{"P2001", "Saline Spray", "ClearAir"},
		})

	count, err := svc.ImportProducts(context.Background(), buf)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, "ClearAir", catalog.products[1].Brand)
}

func TestImportSalespersons(t *testing.T) {
	roster := &stubRosterRepo{}
	svc := NewAdminService(roster, &stubCatalogRepo{}, &stubLedgerRepo{})

	buf := buildWorkbook(t,
		[]string{"Code", "Name"},
		[][]string{{"6", "Alice Tan"}, {"7", "Ben Ortiz"}})

	count, err := svc.ImportSalespersons(context.Background(), buf)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, "6", roster.salespersons[0].Code)
}

func TestImportRejectsNonWorkbook(t *testing.T) {
	svc := NewAdminService(&stubRosterRepo{}, &stubCatalogRepo{}, &stubLedgerRepo{})

	_, err := svc.ImportCustomers(context.Background(), bytes.NewBufferString("not an xlsx"))
	require.Error(t, err)
}

func TestExportLedgerRoundTrip(t *testing.T) {
	ledger := &stubLedgerRepo{rows: []entity.LedgerRow{
		{
			BillDate: "20240315", BillNo: "0620240315001",
			PersonID: "06", PersonName: "Alice Tan",
			CustID: "C001", ProdID: "P1", ProdName: "Vitamin C", Quantity: 10,
		},
		{
			BillDate: "20240315", BillNo: "0620240315001",
			PersonID: "06", PersonName: "Alice Tan",
			CustID: "C001", ProdID: "P1", ProdName: "Vitamin C (bonus)", Quantity: 2,
		},
	}}
	svc := NewAdminService(&stubRosterRepo{}, &stubCatalogRepo{}, ledger)

	var buf bytes.Buffer
	count, err := svc.ExportLedger(context.Background(), &buf)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(entity.TableOrderLedger)
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 data rows
	require.Equal(t, entity.Columns(entity.TableOrderLedger), rows[0])
	require.Equal(t, "0620240315001", rows[1][1])
	require.Equal(t, "Vitamin C (bonus)", rows[2][6])
	require.Equal(t, "2", rows[2][7])
}

func TestGetOverviewCounts(t *testing.T) {
	roster := &stubRosterRepo{salespersons: []entity.Salesperson{{Code: "6", Name: "Alice Tan"}}}
	catalog := &stubCatalogRepo{
		customers: []entity.Customer{{ID: "C001"}, {ID: "C002"}},
		products:  []entity.Product{{ID: "P1"}},
	}
	ledger := &stubLedgerRepo{rows: []entity.LedgerRow{
		{BillNo: "0620240315001"}, {BillNo: "0620240315002"}, {BillNo: "0620240315003"},
	}}
	svc := NewOverviewService(roster, catalog, ledger)

	overview, err := svc.GetOverview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, overview.SalespersonCount)
	require.Equal(t, 2, overview.CustomerCount)
	require.Equal(t, 1, overview.ProductCount)
	require.Equal(t, 3, overview.LedgerRowCount)
	require.Len(t, overview.RecentRows, 3)
}

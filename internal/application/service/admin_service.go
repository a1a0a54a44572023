package service

import (
	"context"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/domain/repository"
	"github.com/ordersheet/ordersheet-api/pkg/apperror"
)

// AdminService handles the bulk maintenance path: wholesale overwrites
// of the roster and catalog tables from uploaded Excel workbooks, plus
// ledger export
type AdminService struct {
	rosterRepo  repository.RosterRepository
	catalogRepo repository.CatalogRepository
	ledgerRepo  repository.LedgerRepository
}

// NewAdminService creates a new admin service
func NewAdminService(
	rosterRepo repository.RosterRepository,
	catalogRepo repository.CatalogRepository,
	ledgerRepo repository.LedgerRepository,
) *AdminService {
	return &AdminService{
		rosterRepo:  rosterRepo,
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// ImportCustomers replaces the whole customer table with the first
// worksheet of the uploaded workbook. The first row is a header; only
// the first two columns (id, name) are taken, a third column becomes
// the salesperson affiliation when present. Returns the imported count.
func (s *AdminService) ImportCustomers(ctx context.Context, r io.Reader) (int, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return 0, err
	}

	customers := make([]entity.Customer, 0, len(rows))
	for _, cells := range rows {
		c := entity.Customer{
			ID:   cell(cells, 0),
			Name: cell(cells, 1),
		}
		if c.ID == "" && c.Name == "" {
			continue
		}
		c.SalespersonName = cell(cells, 2)
		customers = append(customers, c)
	}

	if err := s.catalogRepo.ReplaceCustomers(ctx, customers); err != nil {
		return 0, err
	}
	return len(customers), nil
}

// ImportProducts replaces the whole product table with the first
// worksheet of the uploaded workbook. Only the first three columns
// (id, name, brand) are taken.
func (s *AdminService) ImportProducts(ctx context.Context, r io.Reader) (int, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return 0, err
	}

	products := make([]entity.Product, 0, len(rows))
	for _, cells := range rows {
		p := entity.Product{
			ID:    cell(cells, 0),
			Name:  cell(cells, 1),
			Brand: cell(cells, 2),
		}
		if p.ID == "" && p.Name == "" {
			continue
		}
		products = append(products, p)
	}

	if err := s.catalogRepo.ReplaceProducts(ctx, products); err != nil {
		return 0, err
	}
	return len(products), nil
}

// ImportSalespersons replaces the roster with the first worksheet of
// the uploaded workbook (code, name).
func (s *AdminService) ImportSalespersons(ctx context.Context, r io.Reader) (int, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return 0, err
	}

	salespersons := make([]entity.Salesperson, 0, len(rows))
	for _, cells := range rows {
		sp := entity.Salesperson{
			Code: cell(cells, 0),
			Name: cell(cells, 1),
		}
		if sp.Code == "" && sp.Name == "" {
			continue
		}
		salespersons = append(salespersons, sp)
	}

	if err := s.rosterRepo.Replace(ctx, salespersons); err != nil {
		return 0, err
	}
	return len(salespersons), nil
}

// ExportLedger writes the full ledger to w as an xlsx workbook with one
// worksheet named after the ledger table.
func (s *AdminService) ExportLedger(ctx context.Context, w io.Writer) (int, error) {
	rows, _, err := s.ledgerRepo.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, entity.TableOrderLedger); err != nil {
		return 0, apperror.NewStoreUnavailableError(err)
	}

	columns := entity.Columns(entity.TableOrderLedger)
	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(entity.TableOrderLedger, "A1", &header); err != nil {
		return 0, apperror.NewStoreUnavailableError(err)
	}

	for i, row := range rows {
		sheetRow := row.SheetRow()
		cells := make([]interface{}, len(columns))
		for j, col := range columns {
			cells[j] = sheetRow[col]
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, apperror.NewStoreUnavailableError(err)
		}
		if err := f.SetSheetRow(entity.TableOrderLedger, addr, &cells); err != nil {
			return 0, apperror.NewStoreUnavailableError(err)
		}
	}

	if err := f.Write(w); err != nil {
		return 0, apperror.NewStoreUnavailableError(err)
	}
	return len(rows), nil
}

// readFirstSheet returns the data rows of the workbook's first sheet,
// header row excluded.
func readFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid Excel file: " + err.Error())
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperror.NewBadRequestError("Workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperror.NewBadRequestError("Failed to read worksheet: " + err.Error())
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

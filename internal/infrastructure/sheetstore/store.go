// Package sheetstore implements the tabular store on a local xlsx
// workbook. One worksheet per table, first row is the header. Table
// versions live in a hidden _meta worksheet; a process-wide mutex
// makes version checks and overwrites atomic within one instance.
package sheetstore

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/pkg/apperror"
)

const metaSheet = "_meta"

// Store is an xlsx-workbook-backed TabularStore.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a store over the workbook at path. The file is created
// lazily on first write; reading a missing workbook yields empty tables.
func New(path string) *Store {
	return &Store{path: path}
}

// Read returns the full contents and version of a table. A missing
// workbook or worksheet reads as an empty table at version 0.
func (s *Store) Read(ctx context.Context, table string) ([]entity.SheetRow, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(table)
}

// Write overwrites the table's entire contents and bumps its version.
func (s *Store) Write(ctx context.Context, table string, rows []entity.SheetRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, version, err := s.readLocked(table)
	if err != nil {
		return err
	}
	return s.writeLocked(table, rows, version+1)
}

// WriteIf overwrites the table only when its version still matches
// expectedVersion; otherwise apperror.ErrWriteConflict.
func (s *Store) WriteIf(ctx context.Context, table string, rows []entity.SheetRow, expectedVersion int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, version, err := s.readLocked(table)
	if err != nil {
		return err
	}
	if version != expectedVersion {
		return apperror.ErrWriteConflict
	}
	return s.writeLocked(table, rows, version+1)
}

func (s *Store) readLocked(table string) ([]entity.SheetRow, int64, error) {
	f, err := s.open()
	if err != nil {
		return nil, 0, err
	}
	if f == nil {
		return nil, 0, nil
	}
	defer f.Close()

	version := readVersion(f, table)

	idx, err := f.GetSheetIndex(table)
	if err != nil || idx < 0 {
		return nil, version, nil
	}

	raw, err := f.GetRows(table)
	if err != nil {
		return nil, 0, apperror.NewStoreUnavailableError(err)
	}
	if len(raw) == 0 {
		return nil, version, nil
	}

	header := raw[0]
	rows := make([]entity.SheetRow, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(entity.SheetRow, len(header))
		for i, col := range header {
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, version, nil
}

func (s *Store) writeLocked(table string, rows []entity.SheetRow, newVersion int64) error {
	f, err := s.open()
	if err != nil {
		return err
	}
	created := false
	if f == nil {
		f = excelize.NewFile()
		created = true
	}
	defer f.Close()

	// Rebuild the worksheet from scratch; the store contract is a
	// wholesale overwrite, never an in-place row update.
	if idx, err := f.GetSheetIndex(table); err == nil && idx >= 0 {
		if err := f.DeleteSheet(table); err != nil {
			return apperror.NewStoreUnavailableError(err)
		}
	}
	if _, err := f.NewSheet(table); err != nil {
		return apperror.NewStoreUnavailableError(err)
	}

	columns := entity.Columns(table)
	if columns == nil && len(rows) > 0 {
		for col := range rows[0] {
			columns = append(columns, col)
		}
		sort.Strings(columns)
	}

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(table, "A1", &header); err != nil {
		return apperror.NewStoreUnavailableError(err)
	}
	for i, row := range rows {
		cells := make([]interface{}, len(columns))
		for j, col := range columns {
			cells[j] = row[col]
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperror.NewStoreUnavailableError(err)
		}
		if err := f.SetSheetRow(table, addr, &cells); err != nil {
			return apperror.NewStoreUnavailableError(err)
		}
	}

	if err := writeVersion(f, table, newVersion); err != nil {
		return err
	}

	// A fresh workbook carries excelize's default sheet; drop it so the
	// file contains only real tables and the meta sheet.
	if created {
		if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx >= 0 {
			_ = f.DeleteSheet("Sheet1")
		}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperror.NewStoreUnavailableError(err)
		}
	}
	if err := f.SaveAs(s.path); err != nil {
		return apperror.NewStoreUnavailableError(err)
	}
	return nil
}

// open returns the workbook, or nil when it does not exist yet.
func (s *Store) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperror.NewStoreUnavailableError(err)
	}
	return f, nil
}

func readVersion(f *excelize.File, table string) int64 {
	idx, err := f.GetSheetIndex(metaSheet)
	if err != nil || idx < 0 {
		return 0
	}
	rows, err := f.GetRows(metaSheet)
	if err != nil {
		return 0
	}
	for _, cells := range rows {
		if len(cells) >= 2 && cells[0] == table {
			v, _ := strconv.ParseInt(cells[1], 10, 64)
			return v
		}
	}
	return 0
}

func writeVersion(f *excelize.File, table string, version int64) error {
	versions := map[string]int64{}
	if idx, err := f.GetSheetIndex(metaSheet); err == nil && idx >= 0 {
		if rows, err := f.GetRows(metaSheet); err == nil {
			for _, cells := range rows {
				if len(cells) >= 2 {
					v, _ := strconv.ParseInt(cells[1], 10, 64)
					versions[cells[0]] = v
				}
			}
		}
		if err := f.DeleteSheet(metaSheet); err != nil {
			return apperror.NewStoreUnavailableError(err)
		}
	}
	versions[table] = version

	if _, err := f.NewSheet(metaSheet); err != nil {
		return apperror.NewStoreUnavailableError(err)
	}
	if err := f.SetSheetVisible(metaSheet, false); err != nil {
		return apperror.NewStoreUnavailableError(err)
	}

	row := 1
	for name, v := range versions {
		addr, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return apperror.NewStoreUnavailableError(err)
		}
		cells := []interface{}{name, strconv.FormatInt(v, 10)}
		if err := f.SetSheetRow(metaSheet, addr, &cells); err != nil {
			return apperror.NewStoreUnavailableError(err)
		}
		row++
	}
	return nil
}

package database

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/pkg/apperror"
)

// SheetRowRecord is one tabular-store row persisted as a JSON document.
// Whole tables are still replaced wholesale on write; position keeps
// the persisted order stable.
type SheetRowRecord struct {
	ID         uint   `gorm:"primaryKey"`
	SheetTable string `gorm:"column:table_name;size:64;not null;index:idx_sheet_rows_table"`
	Position   int    `gorm:"not null"`
	Data       string `gorm:"type:jsonb;not null"`
}

// TableName returns the table name for the SheetRowRecord model
func (SheetRowRecord) TableName() string {
	return "sheet_rows"
}

// SheetVersionRecord tracks the optimistic-concurrency version of one
// logical table.
type SheetVersionRecord struct {
	SheetTable string `gorm:"column:table_name;primaryKey;size:64"`
	Version    int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for the SheetVersionRecord model
func (SheetVersionRecord) TableName() string {
	return "sheet_versions"
}

// Store is a postgres-backed TabularStore.
type Store struct {
	db *gorm.DB
}

// NewStore creates a postgres-backed store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Read returns the full contents and version of a table. An unknown
// table reads as empty at version 0.
func (s *Store) Read(ctx context.Context, table string) ([]entity.SheetRow, int64, error) {
	var version SheetVersionRecord
	err := s.db.WithContext(ctx).Where("table_name = ?", table).First(&version).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperror.NewStoreUnavailableError(err)
		}
		version.Version = 0
	}

	var records []SheetRowRecord
	if err := s.db.WithContext(ctx).
		Where("table_name = ?", table).
		Order("position ASC").
		Find(&records).Error; err != nil {
		return nil, 0, apperror.NewStoreUnavailableError(err)
	}

	rows := make([]entity.SheetRow, 0, len(records))
	for _, rec := range records {
		row := entity.SheetRow{}
		if err := json.Unmarshal([]byte(rec.Data), &row); err != nil {
			return nil, 0, apperror.NewStoreUnavailableError(err)
		}
		rows = append(rows, row)
	}
	return rows, version.Version, nil
}

// Write overwrites the table's entire contents and bumps its version.
func (s *Store) Write(ctx context.Context, table string, rows []entity.SheetRow) error {
	return s.write(ctx, table, rows, nil)
}

// WriteIf overwrites the table only when its version still matches
// expectedVersion; otherwise apperror.ErrWriteConflict.
func (s *Store) WriteIf(ctx context.Context, table string, rows []entity.SheetRow, expectedVersion int64) error {
	return s.write(ctx, table, rows, &expectedVersion)
}

func (s *Store) write(ctx context.Context, table string, rows []entity.SheetRow, expectedVersion *int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var version SheetVersionRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("table_name = ?", table).
			First(&version).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			version = SheetVersionRecord{SheetTable: table, Version: 0}
			if err := tx.Create(&version).Error; err != nil {
				return err
			}
		}

		if expectedVersion != nil && version.Version != *expectedVersion {
			return apperror.ErrWriteConflict
		}

		if err := tx.Where("table_name = ?", table).Delete(&SheetRowRecord{}).Error; err != nil {
			return err
		}

		if len(rows) > 0 {
			records := make([]SheetRowRecord, 0, len(rows))
			for i, row := range rows {
				data, err := json.Marshal(row)
				if err != nil {
					return err
				}
				records = append(records, SheetRowRecord{
					SheetTable: table,
					Position:   i,
					Data:       string(data),
				})
			}
			if err := tx.CreateInBatches(records, 500).Error; err != nil {
				return err
			}
		}

		return tx.Model(&SheetVersionRecord{}).
			Where("table_name = ?", table).
			Update("version", version.Version+1).Error
	})
	if err != nil {
		if errors.Is(err, apperror.ErrWriteConflict) {
			return apperror.ErrWriteConflict
		}
		return apperror.NewStoreUnavailableError(err)
	}
	return nil
}

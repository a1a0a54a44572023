package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/ordersheet/ordersheet-api/internal/domain/entity"
	"github.com/ordersheet/ordersheet-api/internal/domain/repository"
	"github.com/ordersheet/ordersheet-api/pkg/apperror"
	"github.com/ordersheet/ordersheet-api/pkg/pagination"
)

// BonusSuffix marks the product name of a bonus-quantity ledger line.
const BonusSuffix = " (bonus)"

// OrderService handles order submission and ledger queries
type OrderService struct {
	ledgerRepo repository.LedgerRepository
	rosterRepo repository.RosterRepository
	cartRepo   repository.CartRepository
	maxRetries int
}

// NewOrderService creates a new order service. maxRetries is how many
// times a submission is recomputed after a write conflict.
func NewOrderService(
	ledgerRepo repository.LedgerRepository,
	rosterRepo repository.RosterRepository,
	cartRepo repository.CartRepository,
	maxRetries int,
) *OrderService {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &OrderService{
		ledgerRepo: ledgerRepo,
		rosterRepo: rosterRepo,
		cartRepo:   cartRepo,
		maxRetries: maxRetries,
	}
}

// SubmitOrderInput represents the submit order input
type SubmitOrderInput struct {
	SessionID       string
	SalespersonCode string
	OrderDate       time.Time
}

// SubmitOrderResult is the outcome of a successful submission.
type SubmitOrderResult struct {
	BillNo string             `json:"bill_no"`
	Rows   []entity.LedgerRow `json:"rows"`
}

// SubmitOrder turns the session cart into ledger rows under a freshly
// generated bill number and appends them to the ledger.
//
// The sequence is snapshot -> compute bill number -> expand rows ->
// conflict-checked append. When a concurrent submission wins the race
// (same bill number or a moved table version) the whole sequence is
// retried with a fresh snapshot. On any failure the cart is left
// intact so the user can resubmit; it is cleared only after the write
// lands.
func (s *OrderService) SubmitOrder(ctx context.Context, input *SubmitOrderInput) (*SubmitOrderResult, error) {
	cart := s.cartRepo.Get(input.SessionID)
	if len(cart.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}

	code := NormalizeSalespersonCode(input.SalespersonCode)
	name := s.resolvePersonName(ctx, code, input.SalespersonCode)

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		rows, _, err := s.ledgerRepo.Snapshot(ctx)
		if err != nil {
			return nil, err
		}

		billNo := NextBillNumber(code, input.OrderDate, billNumbers(rows))
		newRows := ExpandCartLines(cart.Lines, billNo, input.OrderDate, code, name)
		if len(newRows) == 0 {
			return nil, apperror.NewBadRequestError("Cart has no non-zero quantities")
		}

		err = s.ledgerRepo.Append(ctx, newRows)
		if errors.Is(err, apperror.ErrWriteConflict) {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, err
		}

		s.cartRepo.Clear(input.SessionID)
		return &SubmitOrderResult{BillNo: billNo, Rows: newRows}, nil
	}

	return nil, lastErr
}

// resolvePersonName looks the salesperson up by normalized code. An
// unknown code falls back to the raw input so the ledger still records
// who submitted.
func (s *OrderService) resolvePersonName(ctx context.Context, code, raw string) string {
	salespersons, err := s.rosterRepo.Salespersons(ctx)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	for _, sp := range salespersons {
		if NormalizeSalespersonCode(sp.Code) == code {
			return sp.Name
		}
	}
	return strings.TrimSpace(raw)
}

// ExpandCartLines expands each cart line into zero, one, or two ledger
// rows: one for the ordered quantity and a second, suffixed row for the
// bonus quantity. Lines with both quantities at zero produce nothing.
func ExpandCartLines(lines []entity.CartLine, billNo string, date time.Time, personID, personName string) []entity.LedgerRow {
	billDate := date.Format(billDateLayout)

	rows := make([]entity.LedgerRow, 0, len(lines))
	for _, line := range lines {
		if line.OrderQuantity > 0 {
			rows = append(rows, entity.LedgerRow{
				BillDate:   billDate,
				BillNo:     billNo,
				PersonID:   personID,
				PersonName: personName,
				CustID:     line.CustomerID,
				ProdID:     line.ProductID,
				ProdName:   line.ProductName,
				Quantity:   line.OrderQuantity,
			})
		}
		if line.BonusQuantity > 0 {
			rows = append(rows, entity.LedgerRow{
				BillDate:   billDate,
				BillNo:     billNo,
				PersonID:   personID,
				PersonName: personName,
				CustID:     line.CustomerID,
				ProdID:     line.ProductID,
				ProdName:   line.ProductName + BonusSuffix,
				Quantity:   line.BonusQuantity,
			})
		}
	}
	return rows
}

// OrderFilterParams narrows ledger listings.
type OrderFilterParams struct {
	PersonID   string
	BillDate   string // YYYYMMDD
	Pagination *pagination.PaginationParams
}

// ListOrders returns ledger rows newest-document first, optionally
// filtered by salesperson code and date.
func (s *OrderService) ListOrders(ctx context.Context, params *OrderFilterParams) (*pagination.PaginatedResult[entity.LedgerRow], error) {
	rows, _, err := s.ledgerRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]entity.LedgerRow, 0, len(rows))
	for _, row := range rows {
		if params.PersonID != "" && row.PersonID != params.PersonID {
			continue
		}
		if params.BillDate != "" && row.BillDate != params.BillDate {
			continue
		}
		filtered = append(filtered, row)
	}

	// Listings show the latest document first. Date has to be compared
	// before bill number: bill numbers start with the salesperson code,
	// so raw id order would group by salesperson instead of recency.
	// The sort is stable so line order within a bill survives.
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].BillDate != filtered[j].BillDate {
			return filtered[i].BillDate > filtered[j].BillDate
		}
		return filtered[i].BillNo > filtered[j].BillNo
	})

	items, pag := pagination.Slice(filtered, params.Pagination)
	return pagination.NewPaginatedResult(items, pag), nil
}

// GetOrder returns every ledger row of one document.
func (s *OrderService) GetOrder(ctx context.Context, billNo string) ([]entity.LedgerRow, error) {
	rows, _, err := s.ledgerRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var matched []entity.LedgerRow
	for _, row := range rows {
		if row.BillNo == billNo {
			matched = append(matched, row)
		}
	}
	if len(matched) == 0 {
		return nil, apperror.NewNotFoundError("Order")
	}
	return matched, nil
}

func billNumbers(rows []entity.LedgerRow) []string {
	nos := make([]string, 0, len(rows))
	for _, row := range rows {
		nos = append(nos, row.BillNo)
	}
	return nos
}

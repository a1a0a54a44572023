package entity

import "strconv"

// LedgerRow is one persisted line item of the append-only order ledger.
// Rows are never mutated or deleted by the service; the ledger only
// grows, one whole-table overwrite at a time.
type LedgerRow struct {
	BillDate   string `json:"bill_date"` // YYYYMMDD
	BillNo     string `json:"bill_no"`   // 13 chars: PPYYYYMMDDSSS
	PersonID   string `json:"person_id"` // 2-digit salesperson code
	PersonName string `json:"person_name"`
	CustID     string `json:"cust_id"`
	ProdID     string `json:"prod_id"`
	ProdName   string `json:"prod_name"` // suffixed " (bonus)" for bonus lines
	Quantity   int    `json:"quantity"`
}

// LedgerRowFromSheet decodes a ledger row. A non-numeric quantity cell
// decodes to zero rather than failing; manual edits happen out-of-band
// on the store and must not break reads.
func LedgerRowFromSheet(row SheetRow) LedgerRow {
	qty, _ := strconv.Atoi(row["Quantity"])
	return LedgerRow{
		BillDate:   row["BillDate"],
		BillNo:     row["BillNo"],
		PersonID:   row["PersonID"],
		PersonName: row["PersonName"],
		CustID:     row["CustID"],
		ProdID:     row["ProdID"],
		ProdName:   row["ProdName"],
		Quantity:   qty,
	}
}

// SheetRow encodes the ledger row for persistence.
func (r LedgerRow) SheetRow() SheetRow {
	return SheetRow{
		"BillDate":   r.BillDate,
		"BillNo":     r.BillNo,
		"PersonID":   r.PersonID,
		"PersonName": r.PersonName,
		"CustID":     r.CustID,
		"ProdID":     r.ProdID,
		"ProdName":   r.ProdName,
		"Quantity":   strconv.Itoa(r.Quantity),
	}
}

package entity

// SheetRow is one row of a tabular-store table, keyed by column name.
// Cell values are untyped text, the way a spreadsheet hands them back.
type SheetRow map[string]string

// Table names used across both store backends. Each logical table maps
// to one worksheet in the xlsx backend and one row set in postgres.
const (
	TableSalespersons    = "Salespersons"
	TableCustomers       = "Customers"
	TableProducts        = "Products"
	TableOrderLedger     = "OrderLedger"
	TableIdempotencyKeys = "IdempotencyKeys"
)

var tableColumns = map[string][]string{
	TableSalespersons:    {"Code", "Name"},
	TableCustomers:       {"CustID", "CustName", "SalespersonName"},
	TableProducts:        {"ProdID", "ProdName", "Brand"},
	TableOrderLedger:     {"BillDate", "BillNo", "PersonID", "PersonName", "CustID", "ProdID", "ProdName", "Quantity"},
	TableIdempotencyKeys: {"Key", "SessionID", "Endpoint", "ResponseCode", "ResponseBody", "ExpiresAt"},
}

// Columns returns the persisted column order for a table. Unknown tables
// get no fixed order; the store derives one from the rows it is given.
func Columns(table string) []string {
	return tableColumns[table]
}

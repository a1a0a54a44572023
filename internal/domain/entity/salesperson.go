package entity

import "strings"

// Salesperson is one row of the read-only roster table.
type Salesperson struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SalespersonFromSheet decodes a roster row. Names are trimmed because
// they double as the join key for customer affiliation.
func SalespersonFromSheet(row SheetRow) Salesperson {
	return Salesperson{
		Code: strings.TrimSpace(row["Code"]),
		Name: strings.TrimSpace(row["Name"]),
	}
}

// SheetRow encodes the salesperson for persistence.
func (s Salesperson) SheetRow() SheetRow {
	return SheetRow{
		"Code": s.Code,
		"Name": s.Name,
	}
}

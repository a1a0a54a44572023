package entity

import "strings"

// Customer is one row of the read-only customer table. SalespersonName
// is an optional affiliation used to narrow the customer picker.
type Customer struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	SalespersonName string `json:"salesperson_name,omitempty"`
}

// CustomerFromSheet decodes a customer row.
func CustomerFromSheet(row SheetRow) Customer {
	return Customer{
		ID:              strings.TrimSpace(row["CustID"]),
		Name:            strings.TrimSpace(row["CustName"]),
		SalespersonName: strings.TrimSpace(row["SalespersonName"]),
	}
}

// SheetRow encodes the customer for persistence.
func (c Customer) SheetRow() SheetRow {
	return SheetRow{
		"CustID":          c.ID,
		"CustName":        c.Name,
		"SalespersonName": c.SalespersonName,
	}
}

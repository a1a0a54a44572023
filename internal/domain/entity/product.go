package entity

import "strings"

// Product is one row of the read-only product catalog.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
}

// ProductFromSheet decodes a product row.
func ProductFromSheet(row SheetRow) Product {
	return Product{
		ID:    strings.TrimSpace(row["ProdID"]),
		Name:  strings.TrimSpace(row["ProdName"]),
		Brand: strings.TrimSpace(row["Brand"]),
	}
}

// SheetRow encodes the product for persistence.
func (p Product) SheetRow() SheetRow {
	return SheetRow{
		"ProdID":   p.ID,
		"ProdName": p.Name,
		"Brand":    p.Brand,
	}
}

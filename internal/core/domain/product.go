// internal/core/domain/product.go
package domain

import "github.com/shopspring/decimal"

// Brand is a deduplicated product brand, created as a side effect of
// external lookups.
type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Manufacturer is a deduplicated product manufacturer.
type Manufacturer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductData is the metadata an external UPC lookup returns for a
// barcode. It is never persisted as-is; the catalog Item row is the only
// local copy of product data.
type ProductData struct {
	Barcode      string           `json:"barcode"`
	Title        string           `json:"title"`
	Alias        string           `json:"alias,omitempty"`
	Description  string           `json:"description,omitempty"`
	Brand        string           `json:"brand,omitempty"`
	Manufacturer string           `json:"manufacturer,omitempty"`
	Category     string           `json:"category,omitempty"`
	MSRP         *decimal.Decimal `json:"msrp,omitempty"`
}

// Package models holds the gorm models and request payloads of the
// storefront.
package models

import "github.com/shopspring/decimal"

func init() {
	// Prices and totals go out as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

package model

import "github.com/shopspring/decimal"

// Prices are serialized as plain JSON numbers (2.50, not "2.50") so API
// consumers get the same shape the catalog stores.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

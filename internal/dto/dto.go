// Package dto holds request payloads (with their validation tags), query
// filters and response shapes for every resource.
package dto

import "github.com/shopspring/decimal"

func init() {
	// Money goes over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Page is the skip/limit window applied after filtering and ordering.
type Page struct {
	Skip  int `form:"skip,default=0"    validate:"min=0"`
	Limit int `form:"limit,default=100" validate:"min=1,max=1000"`
}

// DefaultPage matches the query defaults.
func DefaultPage() Page { return Page{Skip: 0, Limit: 100} }

// MessageResponse is returned by delete/deactivate endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

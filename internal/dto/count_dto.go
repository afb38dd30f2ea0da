package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

// OpeningCountRequest is used for both create and full update.
type OpeningCountRequest struct {
	RegisterID *string         `json:"register_id"`
	StoreID    string          `json:"store_id"  validate:"required"`
	Amount     decimal.Decimal `json:"amount"    validate:"gt=0,money"`
	Date       string          `json:"date"      validate:"required,isodate"`
	UserID     string          `json:"user_id"   validate:"required"`
	UserName   string          `json:"user_name" validate:"required"`
}

// ClosingCountRequest is used for both create and full update.
// The sales figures are pointers so that an absent figure is rejected
// instead of being stored as zero.
type ClosingCountRequest struct {
	RegisterID      *string          `json:"register_id"`
	StoreID         string           `json:"store_id"         validate:"required"`
	Amount          decimal.Decimal  `json:"amount"           validate:"gt=0,money"`
	SafeAmount      *decimal.Decimal `json:"safe_amount"      validate:"required,gte=0,money"`
	SalesCash       *decimal.Decimal `json:"sales_cash"       validate:"required,gte=0,money"`
	SalesCard       *decimal.Decimal `json:"sales_card"       validate:"required,gte=0,money"`
	CustomerCount   *int             `json:"customer_count"   validate:"required,gte=0"`
	TotalDifference *decimal.Decimal `json:"total_difference" validate:"required,money"`
	Date            string           `json:"date"             validate:"required,isodate"`
	UserID          string           `json:"user_id"          validate:"required"`
	UserName        string           `json:"user_name"        validate:"required"`
}

// CountFilter is shared by opening and closing listings.
type CountFilter struct {
	StoreID    string `form:"store_id"`
	RegisterID string `form:"register_id"`
	Date       string `form:"date" validate:"omitempty,isodate"`
	Page
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type OpeningCountResponse struct {
	ID         string          `json:"id"`
	RegisterID *string         `json:"register_id"`
	StoreID    string          `json:"store_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	UserID     string          `json:"user_id"`
	UserName   string          `json:"user_name"`
	Timestamp  time.Time       `json:"timestamp"`
}

type ClosingCountResponse struct {
	ID              string          `json:"id"`
	RegisterID      *string         `json:"register_id"`
	StoreID         string          `json:"store_id"`
	Amount          decimal.Decimal `json:"amount"`
	SafeAmount      decimal.Decimal `json:"safe_amount"`
	SalesCash       decimal.Decimal `json:"sales_cash"`
	SalesCard       decimal.Decimal `json:"sales_card"`
	CustomerCount   int             `json:"customer_count"`
	TotalDifference decimal.Decimal `json:"total_difference"`
	Date            string          `json:"date"`
	UserID          string          `json:"user_id"`
	UserName        string          `json:"user_name"`
	Timestamp       time.Time       `json:"timestamp"`
}

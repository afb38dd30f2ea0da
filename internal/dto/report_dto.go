package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

// DailyReportRequest is used for both create and full update.
// Every figure is required; pointers tell an absent figure from zero.
type DailyReportRequest struct {
	StoreID         string           `json:"store_id"         validate:"required"`
	Date            string           `json:"date"             validate:"required,isodate"`
	Customers       *int             `json:"customers"        validate:"required,gte=0"`
	SalesCash       *decimal.Decimal `json:"sales_cash"       validate:"required,gte=0,money"`
	SalesCard       *decimal.Decimal `json:"sales_card"       validate:"required,gte=0,money"`
	TotalExpenses   *decimal.Decimal `json:"total_expenses"   validate:"required,gte=0,money"`
	TotalDifference *decimal.Decimal `json:"total_difference" validate:"required,money"`
	Anomalies       *string          `json:"anomalies"`
}

type ReportFilter struct {
	StoreID  string `form:"store_id"`
	DateFrom string `form:"date_from" validate:"omitempty,isodate"`
	DateTo   string `form:"date_to"   validate:"omitempty,isodate"`
	Page
}

// EmailReportRequest asks for a report PDF to be mailed.
type EmailReportRequest struct {
	To string `json:"to" validate:"required,email"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type DailyReportResponse struct {
	ID              string          `json:"id"`
	StoreID         string          `json:"store_id"`
	Date            string          `json:"date"`
	Customers       int             `json:"customers"`
	SalesCash       decimal.Decimal `json:"sales_cash"`
	SalesCard       decimal.Decimal `json:"sales_card"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	TotalDifference decimal.Decimal `json:"total_difference"`
	Anomalies       *string         `json:"anomalies"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

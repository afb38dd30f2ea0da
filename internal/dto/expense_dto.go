package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

// ExpenseRequest is used for both create and full update.
// Date defaults to the server's current day when omitted.
type ExpenseRequest struct {
	Category      string          `json:"category"       validate:"required,oneof=store_supplies maintenance paperwork transport"`
	Item          string          `json:"item"           validate:"required,min=3"`
	Amount        decimal.Decimal `json:"amount"         validate:"gt=0,money"`
	Description   string          `json:"description"    validate:"required,min=10"`
	AttachmentURL *string         `json:"attachment_url"`
	StoreID       *string         `json:"store_id"`
	RegisterID    *string         `json:"register_id"`
	Date          *string         `json:"date"           validate:"omitempty,isodate"`
	UserID        *string         `json:"user_id"`
}

type ExpenseFilter struct {
	StoreID  string `form:"store_id"`
	Category string `form:"category" validate:"omitempty,oneof=store_supplies maintenance paperwork transport"`
	Date     string `form:"date"      validate:"omitempty,isodate"`
	DateFrom string `form:"date_from" validate:"omitempty,isodate"`
	DateTo   string `form:"date_to"   validate:"omitempty,isodate"`
	Page
}

// ExpenseStatsFilter selects the expenses folded by the category statistics.
type ExpenseStatsFilter struct {
	StoreID  string `form:"store_id"`
	DateFrom string `form:"date_from" validate:"omitempty,isodate"`
	DateTo   string `form:"date_to"   validate:"omitempty,isodate"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ExpenseResponse struct {
	ID            string          `json:"id"`
	Category      string          `json:"category"`
	Item          string          `json:"item"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	AttachmentURL *string         `json:"attachment_url"`
	StoreID       *string         `json:"store_id"`
	RegisterID    *string         `json:"register_id"`
	Date          *string         `json:"date"`
	UserID        *string         `json:"user_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CategoryStat is one entry of the by-category statistics.
type CategoryStat struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// ExpenseStats maps category → stat. Categories without expenses are absent.
type ExpenseStats map[string]CategoryStat

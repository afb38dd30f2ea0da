package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateStoreRequest struct {
	ID string `json:"id" validate:"required"`
	StoreRequest
}

type StoreRequest struct {
	Name   string `json:"name" validate:"required"`
	Code   string `json:"code" validate:"required"`
	Active *bool  `json:"active"`
}

type StoreFilter struct {
	ActiveOnly bool `form:"active_only,default=true"`
	Page
}

type CreateCashRegisterRequest struct {
	ID string `json:"id" validate:"required"`
	CashRegisterRequest
}

type CashRegisterRequest struct {
	StoreID string `json:"store_id" validate:"required"`
	Number  int    `json:"number"   validate:"gt=0"`
	Active  *bool  `json:"active"`
}

type CashRegisterFilter struct {
	StoreID    string `form:"store_id"`
	ActiveOnly bool   `form:"active_only,default=true"`
	Page
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type StoreResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

type CashRegisterResponse struct {
	ID      string `json:"id"`
	StoreID string `json:"store_id"`
	Number  int    `json:"number"`
	Active  bool   `json:"active"`
}

package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	UID string `json:"uid" validate:"required"`
	UserRequest
}

// UserRequest holds every mutable user field; PUT replaces all of them.
// Active defaults to true when omitted.
type UserRequest struct {
	Email       string  `json:"email"        validate:"required,email"`
	DisplayName *string `json:"display_name"`
	Role        string  `json:"role"         validate:"required,oneof=DM SM ASM"`
	StoreID     *string `json:"store_id"`
	Active      *bool   `json:"active"`
}

type UserFilter struct {
	Role       string `form:"role" validate:"omitempty,oneof=DM SM ASM"`
	StoreID    string `form:"store_id"`
	ActiveOnly bool   `form:"active_only,default=true"`
	Page
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type UserResponse struct {
	UID         string  `json:"uid"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name"`
	Role        string  `json:"role"`
	StoreID     *string `json:"store_id"`
	Active      bool    `json:"active"`
}

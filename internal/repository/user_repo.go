package repository

import (
	"gestorcash/internal/dto"
	"gestorcash/internal/model"

	"gorm.io/gorm"
)

// UserRepository soft-deletes; users.email is unique at the store.
type UserRepository interface {
	CRUD[model.User, dto.UserFilter]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &table[model.User, dto.UserFilter]{
		gw: NewGateway[model.User](db, "User", "uid").
			WithConflict("uni_users_email", "Email already registered"),
		scopes: userScopes,
		remove: softDelete,
	}
}

func userScopes(f dto.UserFilter) (dto.Page, []Scope) {
	return f.Page, []Scope{
		Eq("role", f.Role),
		Eq("store_id", f.StoreID),
		ActiveOnly(f.ActiveOnly),
		OrderBy("uid asc"),
	}
}

package repository

import (
	"gestorcash/internal/dto"
	"gestorcash/internal/model"

	"gorm.io/gorm"
)

// StoreRepository soft-deletes; stores.code is unique at the store.
type StoreRepository interface {
	CRUD[model.Store, dto.StoreFilter]
}

type CashRegisterRepository interface {
	CRUD[model.CashRegister, dto.CashRegisterFilter]
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &table[model.Store, dto.StoreFilter]{
		gw: NewGateway[model.Store](db, "Store", "id").
			WithConflict("uni_stores_code", "Store code already registered"),
		scopes: func(f dto.StoreFilter) (dto.Page, []Scope) {
			return f.Page, []Scope{ActiveOnly(f.ActiveOnly), OrderBy("id asc")}
		},
		remove: softDelete,
	}
}

func NewCashRegisterRepository(db *gorm.DB) CashRegisterRepository {
	return &table[model.CashRegister, dto.CashRegisterFilter]{
		gw: NewGateway[model.CashRegister](db, "Cash register", "id"),
		scopes: func(f dto.CashRegisterFilter) (dto.Page, []Scope) {
			return f.Page, []Scope{
				Eq("store_id", f.StoreID),
				ActiveOnly(f.ActiveOnly),
				OrderBy("id asc"),
			}
		},
		remove: softDelete,
	}
}

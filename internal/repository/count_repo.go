package repository

import (
	"gestorcash/internal/dto"
	"gestorcash/internal/model"

	"gorm.io/gorm"
)

type OpeningCountRepository interface {
	CRUD[model.OpeningCount, dto.CountFilter]
}

type ClosingCountRepository interface {
	CRUD[model.ClosingCount, dto.CountFilter]
}

func NewOpeningCountRepository(db *gorm.DB) OpeningCountRepository {
	return &table[model.OpeningCount, dto.CountFilter]{
		gw:     NewGateway[model.OpeningCount](db, "Opening count", "id", "timestamp"),
		scopes: countScopes,
	}
}

func NewClosingCountRepository(db *gorm.DB) ClosingCountRepository {
	return &table[model.ClosingCount, dto.CountFilter]{
		gw:     NewGateway[model.ClosingCount](db, "Closing count", "id", "timestamp"),
		scopes: countScopes,
	}
}

func countScopes(f dto.CountFilter) (dto.Page, []Scope) {
	return f.Page, []Scope{
		Eq("store_id", f.StoreID),
		Eq("register_id", f.RegisterID),
		Eq("date", f.Date),
		OrderBy("timestamp asc, id asc"),
	}
}

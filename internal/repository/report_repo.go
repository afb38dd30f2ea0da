package repository

import (
	"gestorcash/internal/dto"
	"gestorcash/internal/model"

	"gorm.io/gorm"
)

// DailyReportRepository lists newest date first.
type DailyReportRepository interface {
	CRUD[model.DailyReport, dto.ReportFilter]
}

func NewDailyReportRepository(db *gorm.DB) DailyReportRepository {
	return &table[model.DailyReport, dto.ReportFilter]{
		gw:     NewGateway[model.DailyReport](db, "Report", "id", "generated_at"),
		scopes: reportScopes,
	}
}

func reportScopes(f dto.ReportFilter) (dto.Page, []Scope) {
	return f.Page, []Scope{
		Eq("store_id", f.StoreID),
		DateRange("date", f.DateFrom, f.DateTo),
		OrderBy("date desc, id desc"),
	}
}

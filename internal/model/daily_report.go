package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyReport summarizes one store's day. (StoreID, Date) is not unique:
// several reports for the same day are accepted.
type DailyReport struct {
	ID              string          `gorm:"primaryKey"`
	StoreID         string          `gorm:"not null;index"`
	Date            string          `gorm:"type:varchar(10);not null;index"`
	Customers       int             `gorm:"not null"`
	SalesCash       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SalesCard       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalExpenses   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalDifference decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	GeneratedAt     time.Time       `gorm:"autoCreateTime"`
	// Anomalies is an opaque serialized list produced by the client.
	Anomalies *string `gorm:"type:text"`
}

func (DailyReport) TableName() string { return "daily_reports" }

func (r *DailyReport) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = newID()
	}
	return nil
}

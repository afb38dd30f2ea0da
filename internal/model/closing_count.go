package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClosingCount is the end-of-shift till count.
// TotalDifference is signed: negative is a shortage, positive an overage.
type ClosingCount struct {
	ID              string          `gorm:"primaryKey"`
	RegisterID      *string         `gorm:"index"`
	StoreID         string          `gorm:"not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SafeAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SalesCash       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SalesCard       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CustomerCount   int             `gorm:"not null"`
	TotalDifference decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Timestamp       time.Time       `gorm:"autoCreateTime"`
	UserID          string          `gorm:"not null"`
	UserName        string          `gorm:"not null"`
	Date            string          `gorm:"type:varchar(10);not null;index"`
}

func (ClosingCount) TableName() string { return "closing_counts" }

func (c *ClosingCount) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = newID()
	}
	return nil
}

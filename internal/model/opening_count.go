package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OpeningCount is the cash counted into a till when a shift starts.
type OpeningCount struct {
	ID         string          `gorm:"primaryKey"`
	RegisterID *string         `gorm:"index"`
	StoreID    string          `gorm:"not null;index"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Timestamp  time.Time       `gorm:"autoCreateTime"`
	UserID     string          `gorm:"not null"`
	UserName   string          `gorm:"not null"`
	Date       string          `gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
}

func (OpeningCount) TableName() string { return "opening_counts" }

func (o *OpeningCount) BeforeCreate(*gorm.DB) error {
	if o.ID == "" {
		o.ID = newID()
	}
	return nil
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is an operating expense paid out of petty cash.
type Expense struct {
	ID            string          `gorm:"primaryKey"`
	Category      string          `gorm:"type:varchar(32);not null;index"`
	Item          string          `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description   string          `gorm:"type:text;not null"`
	AttachmentURL *string
	StoreID       *string   `gorm:"index"`
	RegisterID    *string
	Date          *string   `gorm:"type:varchar(10);index"`
	UserID        *string
	CreatedAt     time.Time `gorm:"index"`
}

func (Expense) TableName() string { return "expenses" }

func (e *Expense) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = newID()
	}
	return nil
}

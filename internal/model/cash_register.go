package model

// CashRegister is a till inside a store.
type CashRegister struct {
	ID      string `gorm:"primaryKey"`
	StoreID string `gorm:"not null;index"`
	Number  int    `gorm:"not null"`
	Active  bool   `gorm:"not null"`
}

func (CashRegister) TableName() string { return "cash_registers" }

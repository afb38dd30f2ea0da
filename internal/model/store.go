package model

// Store is a physical shop. Id and code are supplied by the caller.
type Store struct {
	ID     string `gorm:"primaryKey"`
	Name   string `gorm:"not null"`
	Code   string `gorm:"uniqueIndex:uni_stores_code;not null"`
	Active bool   `gorm:"not null"`
}

func (Store) TableName() string { return "stores" }

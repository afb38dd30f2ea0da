package model

// User is identified by the uid issued by the external identity provider.
// Role: "DM" | "SM" | "ASM". Delete only flips Active.
type User struct {
	UID         string  `gorm:"column:uid;primaryKey"`
	Email       string  `gorm:"uniqueIndex:uni_users_email;not null"`
	DisplayName *string
	Role        string  `gorm:"type:varchar(8);not null"`
	StoreID     *string `gorm:"index"`
	Active      bool    `gorm:"not null"`
}

func (User) TableName() string { return "users" }

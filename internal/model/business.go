package model

import "time"

// Business is the tenant: the unit of data isolation. Every product, sale,
// expense and staff account belongs to exactly one business.
//
// CodePrefix is the human-readable business code (Biz/YYMM/<initial><seq>).
// It is nil between the INSERT that assigns the row its identity and the
// UPDATE that persists the derived code — both happen inside the registration
// transaction, so other operations never observe the code-less state.
type Business struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"size:100;uniqueIndex;not null"`
	OwnerID    uint    `gorm:"uniqueIndex;not null"`
	CodePrefix *string `gorm:"size:100;uniqueIndex"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Owner    *Owner    `gorm:"foreignKey:OwnerID"`
	Staff    []Staff   `gorm:"foreignKey:BusinessID"`
	Products []Product `gorm:"foreignKey:BusinessID"`
	Sales    []Sale    `gorm:"foreignKey:BusinessID"`
	Expenses []Expense `gorm:"foreignKey:BusinessID"`
}

// TableName overrides GORM's default pluralization (business → businesses).
func (Business) TableName() string { return "businesses" }

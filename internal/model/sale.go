package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an immutable log entry. Sales are NEVER updated or deleted by
// normal flow — the only deletion path is the cascade when the product
// itself is removed.
//
// TotalAmount is the per-unit price supplied by the caller at sale time.
// It may differ from the product's current list price: the price is a
// per-transaction override, not derived from the catalog.
//
// StaffID is nil when the seller is the owner.
type Sale struct {
	ID          uint            `gorm:"primaryKey"`
	Date        time.Time       `gorm:"not null;index"`
	Quantity    int             `gorm:"not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ProductID   uint            `gorm:"not null;index"`
	BusinessID  uint            `gorm:"not null;index"`
	StaffID     *uint           `gorm:"index"`
	CustomID    *string         `gorm:"size:50;uniqueIndex"`
	CreatedAt   time.Time

	Product Product `gorm:"foreignKey:ProductID"`
	Staff   *Staff  `gorm:"foreignKey:StaffID"`
}

func (Sale) TableName() string { return "sales" }

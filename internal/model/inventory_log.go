package model

import "time"

// InventoryLog is the append-only audit trail reconciling Product.InStock.
// Quantity is signed: positive = restock, negative = sale-driven decrement.
// Entries are never modified or deleted by normal flow; starting from an
// empty ledger, the sum of quantities for a product always equals its
// InStock counter.
type InventoryLog struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"not null;index"`
	Quantity  int       `gorm:"not null"`
	ProductID uint      `gorm:"not null;index"`
	StaffID   *uint     `gorm:"index"`
	CreatedAt time.Time

	Staff *Staff `gorm:"foreignKey:StaffID"`
}

func (InventoryLog) TableName() string { return "inventory_logs" }

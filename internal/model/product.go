package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the single source of truth for how many units exist.
// InStock changes only through recorded sales and restocks, each of which
// also appends an InventoryLog entry; at any time InStock must equal the sum
// of all inventory log quantities for the product. TotalSold only grows, by
// exactly the quantity of each successful sale.
//
// CustomID is the generated product code (Prd/YYMM/<bizSuffix>/<seq>),
// assigned after the row receives its identity, within the creating
// transaction.
type Product struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"size:100;not null;uniqueIndex:idx_product_name_business"`
	BusinessID uint            `gorm:"not null;uniqueIndex:idx_product_name_business"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Cost       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	InStock    int             `gorm:"not null;default:0"`
	TotalSold  int             `gorm:"not null;default:0"`
	CustomID   *string         `gorm:"size:50;uniqueIndex"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Sales         []Sale         `gorm:"foreignKey:ProductID"`
	InventoryLogs []InventoryLog `gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string { return "products" }

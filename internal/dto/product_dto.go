package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name  string          `json:"name"  validate:"required,max=100"`
	Price decimal.Decimal `json:"price" validate:"required"`
	Cost  decimal.Decimal `json:"cost"  validate:"required"`
}

type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// SellRequest records a sale. UnitPrice is the price charged for this
// transaction; it does not change the catalog list price.
type SellRequest struct {
	Quantity  int             `json:"quantity"   validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

type ProductResponse struct {
	ID        uint            `json:"id"`
	CustomID  string          `json:"custom_id,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	InStock   int             `json:"in_stock"`
	TotalSold int             `json:"total_sold"`
	CreatedAt string          `json:"created_at"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int               `json:"total"`
}

type InventoryLogResponse struct {
	ID       uint   `json:"id"`
	Date     string `json:"date"`
	Quantity int    `json:"quantity"` // positive = restock, negative = sale
	StaffID  *uint  `json:"staff_id,omitempty"`
}

package dto

import "github.com/shopspring/decimal"

type SaleResponse struct {
	ID          uint            `json:"id"`
	CustomID    string          `json:"custom_id,omitempty"`
	Date        string          `json:"date"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	StaffID     *uint           `json:"staff_id,omitempty"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int            `json:"total"`
}

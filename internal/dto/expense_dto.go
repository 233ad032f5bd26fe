package dto

import "github.com/shopspring/decimal"

type RecordExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"      validate:"required"`
	Category    string          `json:"category"    validate:"required,max=100"`
	Description string          `json:"description"`
}

type ExpenseResponse struct {
	ID          uint            `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	StaffID     *uint           `json:"staff_id,omitempty"`
}

type ExpenseListResponse struct {
	Data  []ExpenseResponse `json:"data"`
	Total int               `json:"total"`
}

package dto

import "github.com/shopspring/decimal"

// ReportFilter is bound from the query string of the report endpoints.
// Dates use YYYY-MM-DD. A missing start means "since inception", a missing
// end means "now", and start > end resets both to the full-range default.
type ReportFilter struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type SummaryResponse struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	TotalCOGS       decimal.Decimal `json:"total_cost_of_goods_sold"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	NetProfitPct    decimal.Decimal `json:"net_profit_percentage"`
	DailySalesCount int             `json:"daily_sales_count"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
}

type ProductSalesRow struct {
	Product  string          `json:"product"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type CategoryExpenseRow struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type RecentActivityResponse struct {
	Sales    []SaleResponse    `json:"sales"`
	Expenses []ExpenseResponse `json:"expenses"`
}

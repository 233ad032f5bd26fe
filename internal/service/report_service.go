package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Whillz7/BizFinTrackr/internal/dto"
	"github.com/Whillz7/BizFinTrackr/internal/model"
	"github.com/Whillz7/BizFinTrackr/internal/repository"
)

const (
	dateLayout         = "2006-01-02"
	recentActivitySize = 5
)

type ReportService interface {
	Summarize(ctx context.Context, p model.Principal, filter dto.ReportFilter) (*dto.SummaryResponse, error)
	SalesByProduct(ctx context.Context, p model.Principal, filter dto.ReportFilter) ([]dto.ProductSalesRow, error)
	ExpensesByCategory(ctx context.Context, p model.Principal, filter dto.ReportFilter) ([]dto.CategoryExpenseRow, error)
	RecentActivity(ctx context.Context, p model.Principal) (*dto.RecentActivityResponse, error)
}

type reportService struct {
	sales    repository.SaleRepository
	expenses repository.ExpenseRepository
	cache    *redis.Client // nil disables caching
	cacheTTL time.Duration
	now      func() time.Time
}

func NewReportService(
	sales repository.SaleRepository,
	expenses repository.ExpenseRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) ReportService {
	return &reportService{
		sales:    sales,
		expenses: expenses,
		cache:    cache,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// resolveRange turns the query-string dates into an inclusive [start, end]
// window. Missing or unparseable bounds and inverted ranges fall open to the
// widest sensible window instead of erroring: reports should always render
// something.
func resolveRange(filter dto.ReportFilter, now time.Time) (time.Time, time.Time) {
	start := time.Time{}
	end := now

	if t, err := time.Parse(dateLayout, filter.StartDate); err == nil {
		start = t
	}
	if t, err := time.Parse(dateLayout, filter.EndDate); err == nil {
		// End date is inclusive: extend to the last instant of that day.
		end = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if start.After(end) {
		start = time.Time{}
		end = now
	}
	return start, end
}

func (s *reportService) Summarize(ctx context.Context, p model.Principal, filter dto.ReportFilter) (*dto.SummaryResponse, error) {
	start, end := resolveRange(filter, s.now())

	cacheKey := fmt.Sprintf("report:summary:%d:%s:%s",
		p.BusinessID, start.Format(dateLayout), end.Format(dateLayout))
	if cached := s.cacheGet(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	sales, err := s.sales.ListByBusinessBetween(ctx, p.BusinessID, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListByBusinessBetween(ctx, p.BusinessID, start, end)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	cogs := decimal.Zero
	for i := range sales {
		qty := decimal.NewFromInt(int64(sales[i].Quantity))
		revenue = revenue.Add(sales[i].TotalAmount.Mul(qty))
		// Cost of goods sold uses the current catalog cost, not a cost
		// captured at sale time.
		cogs = cogs.Add(sales[i].Product.Cost.Mul(qty))
	}
	expenseTotal := decimal.Zero
	for i := range expenses {
		expenseTotal = expenseTotal.Add(expenses[i].Amount)
	}

	// Gross profit nets out the cost of goods; net profit is revenue minus
	// operating expenses. The two are reported independently.
	grossProfit := revenue.Sub(cogs)
	netProfit := revenue.Sub(expenseTotal)
	netPct := decimal.Zero
	if revenue.IsPositive() {
		netPct = netProfit.Div(revenue).Mul(decimal.NewFromInt(100)).Round(2)
	}

	// The dashboard counter is units sold today, not the number of sale rows.
	today := s.now()
	startOfDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	dailyUnits, err := s.sales.SumQuantityBetween(ctx, p.BusinessID, startOfDay, today)
	if err != nil {
		return nil, err
	}

	summary := &dto.SummaryResponse{
		TotalRevenue:    revenue.Round(2),
		TotalExpenses:   expenseTotal.Round(2),
		TotalCOGS:       cogs.Round(2),
		GrossProfit:     grossProfit.Round(2),
		NetProfit:       netProfit.Round(2),
		NetProfitPct:    netPct,
		DailySalesCount: int(dailyUnits),
		StartDate:       start.Format(dateLayout),
		EndDate:         end.Format(dateLayout),
	}
	s.cacheSet(ctx, cacheKey, summary)
	return summary, nil
}

func (s *reportService) SalesByProduct(ctx context.Context, p model.Principal, filter dto.ReportFilter) ([]dto.ProductSalesRow, error) {
	start, end := resolveRange(filter, s.now())
	sales, err := s.sales.ListByBusinessBetween(ctx, p.BusinessID, start, end)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]*dto.ProductSalesRow)
	for i := range sales {
		name := sales[i].Product.Name
		row, ok := byProduct[name]
		if !ok {
			row = &dto.ProductSalesRow{Product: name, Revenue: decimal.Zero}
			byProduct[name] = row
		}
		qty := decimal.NewFromInt(int64(sales[i].Quantity))
		row.Quantity += sales[i].Quantity
		row.Revenue = row.Revenue.Add(sales[i].TotalAmount.Mul(qty))
	}

	rows := make([]dto.ProductSalesRow, 0, len(byProduct))
	for _, row := range byProduct {
		row.Revenue = row.Revenue.Round(2)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Quantity != rows[j].Quantity {
			return rows[i].Quantity > rows[j].Quantity
		}
		return rows[i].Product < rows[j].Product
	})
	return rows, nil
}

func (s *reportService) ExpensesByCategory(ctx context.Context, p model.Principal, filter dto.ReportFilter) ([]dto.CategoryExpenseRow, error) {
	start, end := resolveRange(filter, s.now())
	expenses, err := s.expenses.ListByBusinessBetween(ctx, p.BusinessID, start, end)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]decimal.Decimal)
	for i := range expenses {
		byCategory[expenses[i].Category] = byCategory[expenses[i].Category].Add(expenses[i].Amount)
	}

	rows := make([]dto.CategoryExpenseRow, 0, len(byCategory))
	for category, amount := range byCategory {
		rows = append(rows, dto.CategoryExpenseRow{Category: category, Amount: amount.Round(2)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Amount.Equal(rows[j].Amount) {
			return rows[i].Amount.GreaterThan(rows[j].Amount)
		}
		return rows[i].Category < rows[j].Category
	})
	return rows, nil
}

func (s *reportService) RecentActivity(ctx context.Context, p model.Principal) (*dto.RecentActivityResponse, error) {
	sales, err := s.sales.ListRecent(ctx, p.BusinessID, recentActivitySize)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListRecent(ctx, p.BusinessID, recentActivitySize)
	if err != nil {
		return nil, err
	}

	resp := &dto.RecentActivityResponse{
		Sales:    make([]dto.SaleResponse, 0, len(sales)),
		Expenses: make([]dto.ExpenseResponse, 0, len(expenses)),
	}
	for i := range sales {
		resp.Sales = append(resp.Sales, saleToResponse(&sales[i], sales[i].Product.Name))
	}
	for i := range expenses {
		resp.Expenses = append(resp.Expenses, expenseToResponse(&expenses[i]))
	}
	return resp, nil
}

func (s *reportService) cacheGet(ctx context.Context, key string) *dto.SummaryResponse {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var summary dto.SummaryResponse
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *reportService) cacheSet(ctx context.Context, key string, summary *dto.SummaryResponse) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("report cache write failed")
	}
}

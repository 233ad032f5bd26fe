package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Whillz7/BizFinTrackr/internal/dto"
	"github.com/Whillz7/BizFinTrackr/internal/model"
	"github.com/Whillz7/BizFinTrackr/internal/repository"
)

type ExpenseService interface {
	Record(ctx context.Context, p model.Principal, req dto.RecordExpenseRequest) (*dto.ExpenseResponse, error)
	List(ctx context.Context, p model.Principal, filter dto.ReportFilter) (*dto.ExpenseListResponse, error)
}

type expenseService struct {
	expenses repository.ExpenseRepository
	now      func() time.Time
}

func NewExpenseService(expenses repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenses: expenses, now: time.Now}
}

func (s *expenseService) Record(ctx context.Context, p model.Principal, req dto.RecordExpenseRequest) (*dto.ExpenseResponse, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	expense := &model.Expense{
		Date:        s.now(),
		Amount:      req.Amount,
		Category:    category,
		Description: strings.TrimSpace(req.Description),
		BusinessID:  p.BusinessID,
		StaffID:     p.StaffID(),
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	resp := expenseToResponse(expense)
	return &resp, nil
}

func (s *expenseService) List(ctx context.Context, p model.Principal, filter dto.ReportFilter) (*dto.ExpenseListResponse, error) {
	start, end := resolveRange(filter, s.now())
	expenses, err := s.expenses.ListByBusinessBetween(ctx, p.BusinessID, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, expenseToResponse(&expenses[i]))
	}
	return &dto.ExpenseListResponse{Data: out, Total: len(out)}, nil
}

func expenseToResponse(e *model.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date.Format(time.RFC3339),
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		StaffID:     e.StaffID,
	}
}

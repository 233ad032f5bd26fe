package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Whillz7/BizFinTrackr/internal/model"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	ListByBusiness(ctx context.Context, businessID uint) ([]model.Expense, error)
	ListByBusinessBetween(ctx context.Context, businessID uint, start, end time.Time) ([]model.Expense, error)
	ListRecent(ctx context.Context, businessID uint, limit int) ([]model.Expense, error)
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) ListByBusiness(ctx context.Context, businessID uint) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("date DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) ListByBusinessBetween(ctx context.Context, businessID uint, start, end time.Time) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND date >= ? AND date <= ?", businessID, start, end).
		Order("date DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) ListRecent(ctx context.Context, businessID uint, limit int) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("date DESC").
		Limit(limit).
		Find(&expenses).Error
	return expenses, err
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Whillz7/BizFinTrackr/internal/model"
)

type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.Sale) error
	UpdateCustomIDTx(tx *gorm.DB, id uint, customID string) error
	ListByBusiness(ctx context.Context, businessID uint) ([]model.Sale, error)
	ListByBusinessBetween(ctx context.Context, businessID uint, start, end time.Time) ([]model.Sale, error)
	ListRecent(ctx context.Context, businessID uint, limit int) ([]model.Sale, error)
	SumQuantityBetween(ctx context.Context, businessID uint, start, end time.Time) (int64, error)
	DeleteByProductTx(tx *gorm.DB, productID uint) error
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) UpdateCustomIDTx(tx *gorm.DB, id uint, customID string) error {
	return tx.Model(&model.Sale{}).Where("id = ?", id).Update("custom_id", customID).Error
}

func (r *saleRepo) ListByBusiness(ctx context.Context, businessID uint) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("business_id = ?", businessID).
		Order("date DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ListByBusinessBetween(ctx context.Context, businessID uint, start, end time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("business_id = ? AND date >= ? AND date <= ?", businessID, start, end).
		Order("date DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ListRecent(ctx context.Context, businessID uint, limit int) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("business_id = ?", businessID).
		Order("date DESC").
		Limit(limit).
		Find(&sales).Error
	return sales, err
}

// SumQuantityBetween totals units sold in the window. A three-unit sale
// counts as three, not one.
func (r *saleRepo) SumQuantityBetween(ctx context.Context, businessID uint, start, end time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("business_id = ? AND date >= ? AND date <= ?", businessID, start, end).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (r *saleRepo) DeleteByProductTx(tx *gorm.DB, productID uint) error {
	return tx.Where("product_id = ?", productID).Delete(&model.Sale{}).Error
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Whillz7/BizFinTrackr/internal/model"
)

type ProductRepository interface {
	CreateTx(tx *gorm.DB, p *model.Product) error
	UpdateCustomIDTx(tx *gorm.DB, id uint, customID string) error
	FindByID(ctx context.Context, businessID, id uint) (*model.Product, error)
	FindByName(ctx context.Context, businessID uint, name string) (*model.Product, error)
	ListByBusiness(ctx context.Context, businessID uint) ([]model.Product, error)

	// FindByIDForUpdateTx locks the row so concurrent sales of the same
	// product serialize on the stock check.
	FindByIDForUpdateTx(tx *gorm.DB, businessID, id uint) (*model.Product, error)
	// UpdateCountersTx adjusts in_stock and total_sold atomically with
	// relative expressions, never with read-modify-write values.
	UpdateCountersTx(tx *gorm.DB, id uint, stockDelta, soldDelta int) error
	DeleteTx(tx *gorm.DB, businessID, id uint) error

	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) DB() *gorm.DB { return r.db }

func (r *productRepo) CreateTx(tx *gorm.DB, p *model.Product) error {
	return tx.Create(p).Error
}

func (r *productRepo) UpdateCustomIDTx(tx *gorm.DB, id uint, customID string) error {
	return tx.Model(&model.Product{}).Where("id = ?", id).Update("custom_id", customID).Error
}

func (r *productRepo) FindByID(ctx context.Context, businessID, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		First(&p, id).Error
	return &p, err
}

func (r *productRepo) FindByName(ctx context.Context, businessID uint, name string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND name = ?", businessID, name).
		First(&p).Error
	return &p, err
}

func (r *productRepo) ListByBusiness(ctx context.Context, businessID uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByIDForUpdateTx(tx *gorm.DB, businessID, id uint) (*model.Product, error) {
	var p model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("business_id = ?", businessID).
		First(&p, id).Error
	return &p, err
}

func (r *productRepo) UpdateCountersTx(tx *gorm.DB, id uint, stockDelta, soldDelta int) error {
	updates := map[string]interface{}{
		"in_stock": gorm.Expr("in_stock + ?", stockDelta),
	}
	if soldDelta != 0 {
		updates["total_sold"] = gorm.Expr("total_sold + ?", soldDelta)
	}
	return tx.Model(&model.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *productRepo) DeleteTx(tx *gorm.DB, businessID, id uint) error {
	return tx.Where("business_id = ?", businessID).Delete(&model.Product{}, id).Error
}

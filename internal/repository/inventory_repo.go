package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Whillz7/BizFinTrackr/internal/model"
)

// InventoryLogRepository persists the append-only stock movement ledger.
// Logs are never updated; a product's in_stock must always equal the sum
// of its log quantities.
type InventoryLogRepository interface {
	CreateTx(tx *gorm.DB, l *model.InventoryLog) error
	ListByProduct(ctx context.Context, productID uint) ([]model.InventoryLog, error)
	SumByProduct(ctx context.Context, productID uint) (int, error)
	DeleteByProductTx(tx *gorm.DB, productID uint) error
}

type inventoryLogRepo struct{ db *gorm.DB }

func NewInventoryLogRepository(db *gorm.DB) InventoryLogRepository {
	return &inventoryLogRepo{db: db}
}

func (r *inventoryLogRepo) CreateTx(tx *gorm.DB, l *model.InventoryLog) error {
	return tx.Create(l).Error
}

func (r *inventoryLogRepo) ListByProduct(ctx context.Context, productID uint) ([]model.InventoryLog, error) {
	var logs []model.InventoryLog
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

func (r *inventoryLogRepo) SumByProduct(ctx context.Context, productID uint) (int, error) {
	var sum *int
	err := r.db.WithContext(ctx).Model(&model.InventoryLog{}).
		Select("SUM(quantity)").
		Where("product_id = ?", productID).
		Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}

func (r *inventoryLogRepo) DeleteByProductTx(tx *gorm.DB, productID uint) error {
	return tx.Where("product_id = ?", productID).Delete(&model.InventoryLog{}).Error
}

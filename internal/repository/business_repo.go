package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Whillz7/BizFinTrackr/internal/model"
)

// BusinessRepository defines the data access contract for businesses.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type BusinessRepository interface {
	// CreateTx inserts inside a caller-managed transaction so the code prefix
	// can be assigned from the generated ID before commit.
	CreateTx(tx *gorm.DB, b *model.Business) error
	UpdateCodePrefixTx(tx *gorm.DB, id uint, prefix string) error
	FindByID(ctx context.Context, id uint) (*model.Business, error)
	FindByName(ctx context.Context, name string) (*model.Business, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type businessRepo struct{ db *gorm.DB }

func NewBusinessRepository(db *gorm.DB) BusinessRepository { return &businessRepo{db: db} }

func (r *businessRepo) DB() *gorm.DB { return r.db }

func (r *businessRepo) CreateTx(tx *gorm.DB, b *model.Business) error {
	return tx.Create(b).Error
}

func (r *businessRepo) UpdateCodePrefixTx(tx *gorm.DB, id uint, prefix string) error {
	return tx.Model(&model.Business{}).Where("id = ?", id).Update("code_prefix", prefix).Error
}

func (r *businessRepo) FindByID(ctx context.Context, id uint) (*model.Business, error) {
	var b model.Business
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

func (r *businessRepo) FindByName(ctx context.Context, name string) (*model.Business, error) {
	var b model.Business
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&b).Error
	return &b, err
}

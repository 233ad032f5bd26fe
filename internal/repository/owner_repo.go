package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Whillz7/BizFinTrackr/internal/model"
)

type OwnerRepository interface {
	CreateTx(tx *gorm.DB, o *model.Owner) error
	SetBusinessTx(tx *gorm.DB, ownerID, businessID uint) error
	FindByEmail(ctx context.Context, email string) (*model.Owner, error)
	FindByID(ctx context.Context, id uint) (*model.Owner, error)
	Update(ctx context.Context, o *model.Owner) error
}

type ownerRepo struct{ db *gorm.DB }

func NewOwnerRepository(db *gorm.DB) OwnerRepository { return &ownerRepo{db: db} }

func (r *ownerRepo) CreateTx(tx *gorm.DB, o *model.Owner) error {
	return tx.Create(o).Error
}

func (r *ownerRepo) SetBusinessTx(tx *gorm.DB, ownerID, businessID uint) error {
	return tx.Model(&model.Owner{}).Where("id = ?", ownerID).Update("business_id", businessID).Error
}

func (r *ownerRepo) FindByEmail(ctx context.Context, email string) (*model.Owner, error) {
	var o model.Owner
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&o).Error
	return &o, err
}

func (r *ownerRepo) FindByID(ctx context.Context, id uint) (*model.Owner, error) {
	var o model.Owner
	err := r.db.WithContext(ctx).First(&o, id).Error
	return &o, err
}

func (r *ownerRepo) Update(ctx context.Context, o *model.Owner) error {
	return r.db.WithContext(ctx).Save(o).Error
}

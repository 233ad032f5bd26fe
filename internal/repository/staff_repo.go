package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Whillz7/BizFinTrackr/internal/model"
)

type StaffRepository interface {
	Create(ctx context.Context, s *model.Staff) error
	// FindByUsername scopes the lookup to one business; staff usernames are
	// only unique per business.
	FindByUsername(ctx context.Context, businessID uint, username string) (*model.Staff, error)
	FindByID(ctx context.Context, id uint) (*model.Staff, error)
	ListByBusiness(ctx context.Context, businessID uint) ([]model.Staff, error)
	Update(ctx context.Context, s *model.Staff) error
}

type staffRepo struct{ db *gorm.DB }

func NewStaffRepository(db *gorm.DB) StaffRepository { return &staffRepo{db: db} }

func (r *staffRepo) Create(ctx context.Context, s *model.Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *staffRepo) FindByUsername(ctx context.Context, businessID uint, username string) (*model.Staff, error) {
	var s model.Staff
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND username = ?", businessID, username).
		First(&s).Error
	return &s, err
}

func (r *staffRepo) FindByID(ctx context.Context, id uint) (*model.Staff, error) {
	var s model.Staff
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *staffRepo) ListByBusiness(ctx context.Context, businessID uint) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("username ASC").
		Find(&staff).Error
	return staff, err
}

func (r *staffRepo) Update(ctx context.Context, s *model.Staff) error {
	return r.db.WithContext(ctx).Save(s).Error
}

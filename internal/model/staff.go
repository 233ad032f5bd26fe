package model

import "time"

// Staff is a principal scoped to a single business, created by its owner.
// Usernames are unique within the owning business, not globally — two
// businesses can both employ a "maria".
type Staff struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"size:20;not null;uniqueIndex:idx_staff_username_business"`
	BusinessID   uint    `gorm:"not null;uniqueIndex:idx_staff_username_business"`
	Email        *string `gorm:"size:120"`
	PasswordHash string  `gorm:"size:128;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Business *Business `gorm:"foreignKey:BusinessID"`
}

// TableName overrides GORM's pluralization ("staffs" reads wrong).
func (Staff) TableName() string { return "staff" }

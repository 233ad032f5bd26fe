package model

import "time"

// Owner is the principal that created a business — exactly one per business.
// Owners authenticate by email, which is unique across all owners.
//
// BusinessID is nil only during the registration transaction, between the
// owner INSERT and the business INSERT that links back to it.
type Owner struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"size:20;not null"`
	Email        string  `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string  `gorm:"size:128;not null"`
	BusinessID   *uint   `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Owner) TableName() string { return "owners" }
